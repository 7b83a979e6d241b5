package engine

import "testing"

func TestDriverStepWalking(t *testing.T) {
	bounds := Rect{X: 500, Y: 500, W: 1000, H: 1000}
	driver := NewDriver(Position{X: 500, Y: 500}, 16, 16, 300)

	driver.Step(InputState{Right: true}, 0.1, bounds)
	if driver.Position.X != 530 || driver.Position.Y != 500 {
		t.Errorf("position = %+v, want {530 500}", driver.Position)
	}
}

func TestDriverStepNoOpWhileDriving(t *testing.T) {
	bounds := Rect{X: 500, Y: 500, W: 1000, H: 1000}
	driver := NewDriver(Position{X: 500, Y: 500}, 16, 16, 300)
	driver.EnterVehicle(testTruck())

	driver.Step(InputState{Right: true}, 1.0, bounds)
	if driver.Position.X != 500 {
		t.Errorf("driver moved while driving: %+v", driver.Position)
	}
}

func TestDriverEnterExitModes(t *testing.T) {
	driver := NewDriver(Position{X: 500, Y: 500}, 16, 16, 300)
	truck := testTruck()

	driver.EnterVehicle(truck)
	if !driver.Driving() {
		t.Fatal("expected driving mode")
	}
	if driver.Candidate() != truck {
		t.Fatal("possessed truck not retained as candidate")
	}

	driver.ExitVehicle()
	if driver.Driving() {
		t.Fatal("expected walking mode after exit")
	}
	if driver.Candidate() != nil {
		t.Fatal("candidate should be dropped on exit")
	}
}

func TestDriverExitPlacement(t *testing.T) {
	tests := []struct {
		facing Direction
		// side is the expected sign of (driver.X - truck.X): negative means
		// the driver lands left of the truck body, positive right of it.
		side float64
	}{
		{DirUp, -1},
		{DirDown, -1},
		{DirLeft, -1},
		{DirRight, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.facing), func(t *testing.T) {
			driver := NewDriver(Position{X: 0, Y: 0}, 16, 16, 300)
			truck := testTruck()
			truck.Facing = tt.facing
			driver.EnterVehicle(truck)

			driver.ExitVehicle()

			dx := driver.Position.X - truck.Position.X
			if tt.side < 0 && dx >= 0 {
				t.Errorf("facing %q: expected driver left of truck, dx=%v", tt.facing, dx)
			}
			if tt.side > 0 && dx <= 0 {
				t.Errorf("facing %q: expected driver right of truck, dx=%v", tt.facing, dx)
			}

			// Clearance: driver body must sit outside the truck body.
			if driver.Body().Intersects(truck.Body()) {
				t.Errorf("facing %q: driver re-appeared inside the truck", tt.facing)
			}
		})
	}
}
