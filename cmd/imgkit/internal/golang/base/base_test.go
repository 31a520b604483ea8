package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Name(t *testing.T) {
	tests := []struct {
		usage    string
		wantLong string
		wantName string
	}{
		{"imgkit", "", ""},
		{"imgkit move [flags]", "move", "move"},
		{"imgkit icons", "icons", "icons"},
		{"imgkit tool sub [flags] <file>", "tool sub", "sub"},
		{"imgkit open <file>", "open", "open"},
	}
	for _, tt := range tests {
		t.Run(tt.usage, func(t *testing.T) {
			c := &Command{UsageLine: tt.usage}
			assert.Equal(t, tt.wantLong, c.LongName())
			assert.Equal(t, tt.wantName, c.Name())
		})
	}
}

func TestSetExitStatus(t *testing.T) {
	t.Cleanup(func() { exitStatus = SNoError })

	SetExitStatus(SApplicationError)
	SetExitStatus(SGenericError) // lower status does not override
	assert.Equal(t, SApplicationError, ExitStatus())
	assert.Equal(t, "application error", ExitStatus().String())
	assert.Equal(t, "unknown error", StatusCode(200).String())
}
