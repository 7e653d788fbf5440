package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range getCommands("test") {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"server", "worker", "migrate", "signup"}, names)
}

func TestLoadConfig_RejectsInvalidDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := loadConfig()
	assert.ErrorContains(t, err, "DBDriver")
}

func TestGetClientCommands_SignupFlags(t *testing.T) {
	cmds := getClientCommands()
	if assert.Len(t, cmds, 1) {
		flagNames := make([]string, 0)
		for _, flag := range cmds[0].Flags {
			flagNames = append(flagNames, flag.Names()[0])
		}
		assert.Equal(t, []string{"file", "format"}, flagNames)
	}
}
