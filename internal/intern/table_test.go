package intern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternIdentity(t *testing.T) {
	tab := NewTable()

	x := []byte("hello")
	y := []byte("hello")
	z := []byte("hello1")
	require.NotSame(t, &x[0], &y[0])

	require.Same(t, tab.Intern(x), tab.Intern(y))
	require.NotSame(t, tab.Intern(x), tab.Intern(z))
	require.Same(t, tab.Intern(x), tab.InternString("hello"))
	require.Equal(t, 2, tab.Len())
}

func TestInternCopiesInput(t *testing.T) {
	tab := NewTable()
	b := []byte("wer")
	n := tab.Intern(b)
	b[0] = 'x'

	require.Equal(t, "wer", n.String())
	require.Same(t, n, tab.InternString("wer"))
	require.NotSame(t, n, tab.Intern(b))
}

func TestInternPrefixes(t *testing.T) {
	tab := NewTable()
	words := []string{"", "a", "ab", "abc", "b", "_wer", "wer"}
	seen := make(map[*Name]string)
	for _, w := range words {
		n := tab.InternString(w)
		require.Equal(t, len(w), n.Len())
		_, dup := seen[n]
		require.False(t, dup, "%q shares a handle with %q", w, seen[n])
		seen[n] = w
	}
	require.Equal(t, len(words), tab.Len())
}

func TestLookupAndNames(t *testing.T) {
	tab := NewTable()
	_, ok := tab.Lookup("flag")
	require.False(t, ok)

	flag := tab.InternString("flag")
	tab.InternString("truth")
	tab.InternString("flag")

	got, ok := tab.Lookup("flag")
	require.True(t, ok)
	require.Same(t, flag, got)

	var texts []string
	for _, n := range tab.Names() {
		texts = append(texts, n.String())
	}
	require.Equal(t, []string{"flag", "truth"}, texts)
}

func TestReset(t *testing.T) {
	tab := NewTable()
	old := tab.InternString("x")
	tab.Reset()
	require.Equal(t, 0, tab.Len())
	require.NotSame(t, old, tab.InternString("x"))
}

func TestZeroTable(t *testing.T) {
	var tab Table
	a := tab.InternString("a")
	require.Same(t, a, tab.Intern([]byte("a")))
}

func TestNilName(t *testing.T) {
	var n *Name
	require.Equal(t, "<nil>", n.String())
}
