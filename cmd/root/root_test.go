package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rkatz/portfolio-parser/cmd/root"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "portfolio-parser", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "normalize portfolio transaction exports")
	assert.Contains(t, root.Cmd.Long, "CSV and XLSX")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	dirFlag := root.Cmd.PersistentFlags().Lookup("dir")
	if assert.NotNil(t, dirFlag) {
		assert.Equal(t, "d", dirFlag.Shorthand)
		assert.Equal(t, ".", dirFlag.DefValue)
	}

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	if assert.NotNil(t, outputFlag) {
		assert.Equal(t, "o", outputFlag.Shorthand)
	}

	formatFlag := root.Cmd.PersistentFlags().Lookup("format")
	if assert.NotNil(t, formatFlag) {
		assert.Equal(t, "json", formatFlag.DefValue)
	}
}

func TestNewAssembler_DefaultConfig(t *testing.T) {
	root.AppConfig = nil
	assert.NotNil(t, root.NewAssembler())
}
