package commands_test

import (
	"testing"

	"fosso/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteDeliveriesCommand(t *testing.T) {
	cmd := commands.NewCompleteDeliveriesCommand()
	require.NoError(t, cmd.Validate())
}

func TestCompleteDeliveriesCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CompleteDeliveriesCommand
	err := cmd.Validate()
	assert.ErrorIs(t, err, commands.ErrCompleteDeliveriesCommandIsNotConstructed)
}
