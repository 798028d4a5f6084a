package lookup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCSV = `vlr_id,ign
9,TenZ
4004, aspas
not-a-number,ghost
17
 881 , Derke 
`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSkipsHeaderAndInvalidRows(t *testing.T) {
	table, err := Load(writeTable(t, sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	name, ok := table.LookupName(4004)
	require.True(t, ok)
	require.Equal(t, "aspas", name)

	name, ok = table.LookupName(881)
	require.True(t, ok)
	require.Equal(t, "Derke", name)

	_, ok = table.LookupName(17)
	require.False(t, ok)
	_, ok = table.LookupID("ghost")
	require.False(t, ok)
}

func TestLookupRoundTrip(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	for _, id := range table.IDs() {
		name, ok := table.LookupName(id)
		require.True(t, ok)
		back, ok := table.LookupID(name)
		require.True(t, ok)
		require.Equal(t, id, back)
	}
}

func TestLoadMissingFileIsConfigurationError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Contains(t, err.Error(), "absent.csv")
}

func TestLoadMalformedCSVIsConfigurationError(t *testing.T) {
	_, err := Load(writeTable(t, "vlr_id,ign\n1,\"unterminated\n"))
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestHeaderOnlyTableIsEmpty(t *testing.T) {
	table, err := Parse(strings.NewReader("vlr_id,ign\n"))
	require.NoError(t, err)
	require.Zero(t, table.Len())
}

func TestNilTableLookupsMiss(t *testing.T) {
	var table *Table
	_, ok := table.LookupName(1)
	require.False(t, ok)
	_, ok = table.LookupID("x")
	require.False(t, ok)
	require.Zero(t, table.Len())
}

func TestConcurrentReads(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				table.LookupName(9)
				table.LookupID("TenZ")
			}
		}()
	}
	wg.Wait()
}
