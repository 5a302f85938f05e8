package mandelbrot

import (
	"testing"
)

func validSettings() Settings {
	return Settings{
		Bounds:        Bounds{Width: 4, Height: 3},
		LowerRight:    complex(1, -1),
		MaxIterations: 10,
		UpperLeft:     complex(-1, 1),
		Workers:       2,
	}
}

func TestVerify(t *testing.T) {
	settings := validSettings()
	if err := settings.Verify(); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if settings.HeartBeat != 0 {
		t.Errorf("Expected a zero heart beat to be kept, got %s", settings.HeartBeat)
	}

	settings.HeartBeat = -1
	if err := settings.Verify(); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if settings.HeartBeat != defaultHeartBeat {
		t.Errorf("Expected heart beat %s, got %s", defaultHeartBeat, settings.HeartBeat)
	}
}

func TestVerifyRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Settings)
	}{
		{"no workers", func(s *Settings) { s.Workers = 0 }},
		{"negative workers", func(s *Settings) { s.Workers = -3 }},
		{"no iterations", func(s *Settings) { s.MaxIterations = 0 }},
		{"no width", func(s *Settings) { s.Bounds.Width = 0 }},
		{"negative height", func(s *Settings) { s.Bounds.Height = -1 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			settings := validSettings()
			test.modify(&settings)
			if err := settings.Verify(); err == nil {
				t.Error("Expected Verify to fail")
			}
		})
	}
}
