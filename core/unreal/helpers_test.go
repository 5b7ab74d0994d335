package unreal_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"data-exporter/core/unreal"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBasePath = "/data"

const itemTableJSON = `[
  {
    "Type": "DataTable",
    "Name": "ItemTable_Global",
    "Rows": {
      "scrap_metal": {
        "ItemName_51_B88648C048EE5BC2885E4E95F3E13F0A": {"TableId": "/Game/Localization/ST_Items.ST_Items", "Key": "scrap_name"},
        "StackSize_47_D124F11B4B6D9766B2B33699795845A9": 20
      },
      "glue": {
        "ItemName_51_B88648C048EE5BC2885E4E95F3E13F0A": {"CultureInvariantString": "Glue"},
        "StackSize_47_D124F11B4B6D9766B2B33699795845A9": 10
      },
      "armor_plate": {
        "ItemName_51_B88648C048EE5BC2885E4E95F3E13F0A": {"Namespace": "", "Key": "k", "SourceString": "Armor Plate", "LocalizedString": "Armor Plate"},
        "StackSize_47_D124F11B4B6D9766B2B33699795845A9": 1
      }
    }
  }
]`

const stringTableJSON = `[
  {
    "Type": "StringTable",
    "Name": "ST_Items",
    "StringTable": {
      "TableNamespace": "Items",
      "KeysToMetaData": {
        "scrap_name": "Scrap Metal",
        "slot_back": "Back",
        "glue_name": "Glue"
      }
    }
  }
]`

const enumJSON = `[
  {
    "Type": "UserDefinedEnum",
    "Name": "E_Slot",
    "Properties": {
      "DisplayNameMap": [
        {"NewEnumerator0": {"CultureInvariantString": "Head"}},
        {"NewEnumerator1": {"TableId": "/Game/Localization/ST_Items.ST_Items", "Key": "slot_back"}},
        {"NewEnumerator2": {"TableId": "/Game/Localization/ST_Items.ST_Items", "Key": "missing_key"}}
      ]
    }
  }
]`

// countingFs records how often each file is opened.
type countingFs struct {
	afero.Fs

	mu    sync.Mutex
	opens map[string]int
}

func newCountingFs(fs afero.Fs) *countingFs {
	return &countingFs{Fs: fs, opens: make(map[string]int)}
}

func (c *countingFs) Open(name string) (afero.File, error) {
	c.mu.Lock()
	c.opens[name]++
	c.mu.Unlock()
	return c.Fs.Open(name)
}

func (c *countingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	c.mu.Lock()
	c.opens[name]++
	c.mu.Unlock()
	return c.Fs.OpenFile(name, flag, perm)
}

func (c *countingFs) Opens(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens[name]
}

func (c *countingFs) TotalOpens() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.opens {
		total += n
	}
	return total
}

// writeFiles writes relative file paths below testBasePath.
func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		name := filepath.Join(testBasePath, rel)
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
}

func defaultFiles() map[string]string {
	return map[string]string{
		"Blueprints/Items/ItemTable_Global.json": itemTableJSON,
		"Localization/ST_Items.json":             stringTableJSON,
		"Blueprints/Data/E_Slot.json":            enumJSON,
	}
}

func newTestStore(t *testing.T, files map[string]string) (*unreal.ObjectStore, *countingFs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, files)
	fs := newCountingFs(mem)
	return unreal.NewObjectStore(fs, testBasePath, zap.NewNop()), fs
}

var itemTableID = unreal.ObjectIdentifier{
	ObjectName: "ItemTable_Global",
	ObjectPath: "/Game/Blueprints/Items/ItemTable_Global.0",
}
