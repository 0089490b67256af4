package console

import (
	"bytes"
	"flight-dashboard/internal/domain"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterReadsTokensAcrossLines(t *testing.T) {
	p := newPrompter(strings.NewReader("4 08\n30\n"), &bytes.Buffer{})

	n, err := p.readInt("option: ")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	tm, err := p.readTime("time: ")
	require.NoError(t, err)
	assert.Equal(t, domain.NewTime(8, 30), tm)

	_, err = p.readInt("option: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompterInvalidTokenDropsRestOfLine(t *testing.T) {
	p := newPrompter(strings.NewReader("x 1 2\n3\n"), &bytes.Buffer{})

	_, err := p.readInt("option: ")
	assert.ErrorIs(t, err, errInvalidInput)

	n, err := p.readInt("option: ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPrompterDiscardLine(t *testing.T) {
	p := newPrompter(strings.NewReader("9 0\n2\n"), &bytes.Buffer{})

	n, err := p.readInt("option: ")
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	p.discardLine()
	n, err = p.readInt("option: ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
