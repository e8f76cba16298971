package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveApprovalDefault(t *testing.T) {
	tests := []struct {
		name string
		desc ToolDescriptor
		want ApprovalDefault
	}{
		{
			name: "user send escalates to always",
			desc: ToolDescriptor{Name: "user_telegram_send", ApprovalDefault: ApprovalNone},
			want: ApprovalAlways,
		},
		{
			name: "user reply escalates to always",
			desc: ToolDescriptor{Name: "user_telegram_reply"},
			want: ApprovalAlways,
		},
		{
			name: "user fetch keeps declared default",
			desc: ToolDescriptor{Name: "user_telegram_fetch", ApprovalDefault: ApprovalConditional},
			want: ApprovalConditional,
		},
		{
			name: "bot send keeps declared default",
			desc: ToolDescriptor{Name: "bot_telegram_send", ApprovalDefault: ApprovalNone},
			want: ApprovalNone,
		},
		{
			name: "empty default means none",
			desc: ToolDescriptor{Name: "bot_calendar_read"},
			want: ApprovalNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.EffectiveApprovalDefault())
		})
	}
}

func TestUnavailableResult(t *testing.T) {
	res := UnavailableResult("user_telegram_send")
	assert.Equal(t, ToolStatusApprovalUnavailable, res.Status)
	assert.Contains(t, res.Error, "user_telegram_send")
	assert.NotEmpty(t, res.Guidance)
}
