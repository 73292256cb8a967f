package core

import (
	"reflect"
	"testing"
)

func TestResolvePrefixes(t *testing.T) {
	app := newTestApp(t) // defaults are []string{"!"}

	if err := app.Storage.SetPrefixes("guild-custom", []string{"?", ";;"}); err != nil {
		t.Fatalf("SetPrefixes failed: %v", err)
	}
	if err := app.Storage.SetPrefixes("guild-mention-only", []string{}); err != nil {
		t.Fatalf("SetPrefixes failed: %v", err)
	}

	tests := []struct {
		name    string
		guildID string
		want    []string
	}{
		{"direct message uses defaults", "", []string{"!"}},
		{"unconfigured guild uses defaults", "guild-unknown", []string{"!"}},
		{"configured guild uses its own", "guild-custom", []string{"?", ";;"}},
		{"empty list means mention-only", "guild-mention-only", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := app.ResolvePrefixes(tt.guildID)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
