package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daynote/internal/dashboard/adapters/http/dto"
	"daynote/internal/dashboard/domain/entities"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantErr string
	}{
		{name: "valid note", req: dto.NoteRequest{Title: "Standup"}},
		{name: "missing title", req: dto.NoteRequest{}, wantErr: "title: failed on required"},
		{name: "long title", req: dto.NoteRequest{Title: strings.Repeat("ж", 17)}, wantErr: "title: failed on max=16"},
		{name: "unicode title at limit", req: dto.NoteRequest{Title: strings.Repeat("ж", 16)}},
		{name: "slot without period", req: dto.SlotRequest{Text: "x"}, wantErr: "period: failed on required"},
		{name: "toggle without state", req: dto.ToggleRequest{}, wantErr: "completed: failed on required"},
		{
			name:    "password mismatch",
			req:     dto.RegisterRequest{Username: "alice", Password: "secret1", ConfirmPassword: "secret2"},
			wantErr: "confirm_password: failed on eqfield=Password",
		},
		{
			name:    "username with space",
			req:     dto.RegisterRequest{Username: "al ice", Password: "secret1", ConfirmPassword: "secret1"},
			wantErr: "username: failed on excludesall",
		},
		{name: "empty visibility", req: dto.VisibilityRequest{}, wantErr: "activity_visible: failed on required_without"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dto.Validate(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSlotRequestDecodesPeriod(t *testing.T) {
	var req dto.SlotRequest
	require.NoError(t, json.Unmarshal([]byte(`{"period":"evening","text":"Read"}`), &req))

	assert.Equal(t, entities.PeriodEvening, req.ToInput().Period)

	err := json.Unmarshal([]byte(`{"period":"night","text":"Sleep"}`), &req)
	require.ErrorIs(t, err, entities.ErrUnknownPeriod)
}
