package flags

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOpts map[string]bool
		wantRest []string
	}{
		{
			name:     "no flags",
			args:     []string{"prefix", "set"},
			wantOpts: map[string]bool{},
			wantRest: []string{"prefix", "set"},
		},
		{
			name:     "noembed extracted",
			args:     []string{"help", "--noembed"},
			wantOpts: map[string]bool{"noembed": true},
			wantRest: []string{"help"},
		},
		{
			name:     "flag position irrelevant",
			args:     []string{"--NoEmbed", "settings"},
			wantOpts: map[string]bool{"noembed": true},
			wantRest: []string{"settings"},
		},
		{
			name:     "bare dashes are positional",
			args:     []string{"--", "a"},
			wantOpts: map[string]bool{},
			wantRest: []string{"--", "a"},
		},
		{
			name:     "empty input",
			args:     nil,
			wantOpts: map[string]bool{},
			wantRest: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, rest := Parse(tt.args)
			if !reflect.DeepEqual(opts, tt.wantOpts) {
				t.Errorf("Expected opts %v, got %v", tt.wantOpts, opts)
			}
			if !reflect.DeepEqual(rest, tt.wantRest) {
				t.Errorf("Expected rest %v, got %v", tt.wantRest, rest)
			}
		})
	}
}
