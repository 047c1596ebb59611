package wizard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetform/pkg/domain"
)

func TestPrompterAsk_TrimsInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  Jean  \n"), &out)

	answer, err := p.Ask("What is your name?")
	require.NoError(t, err)
	assert.Equal(t, "Jean", answer)
	assert.Contains(t, out.String(), "What is your name?")
	assert.Contains(t, out.String(), "> ")
}

func TestPrompterAsk_AcceptsUnterminatedFinalLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Van"), &out)

	answer, err := p.Ask("Truck type?")
	require.NoError(t, err)
	assert.Equal(t, "Van", answer)
}

func TestPrompterAsk_ClosedInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	_, err := p.Ask("Anyone there?")
	assert.True(t, errors.Is(err, domain.ErrInputClosed))
}

func TestPrompterConfirm(t *testing.T) {
	yes := []string{"yes", "y"}
	no := []string{"no", "n"}

	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain yes", "yes\n", true},
		{"short no", "n\n", false},
		{"case insensitive", "YES\n", true},
		{"retries until recognized", "maybe\nwhatever\nno\n", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tc.input), &out)

			got, err := p.Confirm("Sure?", yes, no)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrompterConfirm_UnrecognizedPrintsRetry(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("dunno\ny\n"), &out)

	got, err := p.Confirm("Sure?", []string{"y"}, []string{"n"})
	require.NoError(t, err)
	assert.True(t, got)
	assert.Contains(t, out.String(), retryMessage)
}
