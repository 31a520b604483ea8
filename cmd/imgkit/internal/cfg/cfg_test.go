package cfg

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetBaseFlags(t *testing.T) {
	tests := []struct {
		name    string
		mask    FlagMask
		want    []string
		notWant []string
	}{
		{"all flags", DefaultFlags, []string{"v", "trace", "log", "log-json"}, nil},
		{"no trace", OmitTraceFlag, []string{"v", "log", "log-json"}, []string{"trace"}},
		{"omit all", OmitAll, []string{"v"}, []string{"trace", "log", "log-json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fs flag.FlagSet
			SetBaseFlags(&fs, tt.mask)
			SetBaseFlags(&fs, tt.mask) // must not panic on redefinition
			for _, name := range tt.want {
				assert.NotNil(t, fs.Lookup(name), name)
			}
			for _, name := range tt.notWant {
				assert.Nil(t, fs.Lookup(name), name)
			}
		})
	}
}

func TestSigInfo(t *testing.T) {
	t.Cleanup(func() { sigReporters = nil })

	RegisterSigInfoReporter(nil)
	RegisterSigInfoReporter(func(w io.Writer) { io.WriteString(w, "one\n") })
	RegisterSigInfoReporter(func(w io.Writer) { io.WriteString(w, "two\n") })

	var buf bytes.Buffer
	SigInfo(&buf)
	assert.Equal(t, "one\ntwo\n", buf.String())

	SigInfo(nil) // no-op
}
