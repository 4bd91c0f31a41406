package settings

import (
	"context"
	"testing"
)

func TestIntoContext(t *testing.T) {
	tests := []struct {
		name     string
		settings *Run
	}{
		{
			name:     "empty_settings",
			settings: &Run{},
		},
		{
			name: "settings_with_values",
			settings: &Run{
				StatePath:   "state.yaml",
				FacetsPath:  "facets.json",
				NoColor:     true,
				ExitOnError: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newCtx := IntoContext(context.Background(), tt.settings)
			if newCtx == nil {
				t.Fatal("IntoContext() returned nil context")
			}

			val := newCtx.Value(runKey)
			retrieved, ok := val.(*Run)
			if !ok {
				t.Fatal("IntoContext() stored value is not *Run")
			}
			if retrieved != tt.settings {
				t.Error("IntoContext() stored different settings pointer")
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		setupCtx func() context.Context
		wantOk   bool
		want     *Run
	}{
		{
			name: "context_with_settings",
			setupCtx: func() context.Context {
				return IntoContext(context.Background(), &Run{
					StatePath: "filters.toml",
					NoColor:   true,
				})
			},
			wantOk: true,
			want:   &Run{StatePath: "filters.toml", NoColor: true},
		},
		{
			name: "context_without_settings",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantOk: false,
		},
		{
			name: "context_with_wrong_type",
			setupCtx: func() context.Context {
				return context.WithValue(context.Background(), runKey, "wrong type")
			},
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromContext(tt.setupCtx())

			if ok != tt.wantOk {
				t.Errorf("FromContext() ok = %v; want %v", ok, tt.wantOk)
			}
			if tt.want == nil {
				if got != nil {
					t.Errorf("FromContext() got = %v; want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("FromContext() returned nil; want non-nil")
			}
			if *got != *tt.want {
				t.Errorf("FromContext() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestIntoContext_FromContext_roundtrip(t *testing.T) {
	settings := &Run{
		MinLogLevel: -1,
		StatePath:   "-",
		IsQuiet:     true,
		ExitOnError: true,
	}

	retrieved, ok := FromContext(IntoContext(context.Background(), settings))
	if !ok {
		t.Fatal("FromContext() failed to retrieve settings")
	}
	if retrieved != settings {
		t.Error("FromContext() returned different settings pointer than stored")
	}
}
