package memory_test

import (
	"testing"

	"fleetform/pkg/adapters/memory"
	"fleetform/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunAnswerStoreContract(t, memory.NewStore())
}
