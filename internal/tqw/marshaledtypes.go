package tqw

type topLevelManifest struct {
	Format string   `toml:"format"`
	Type   string   `toml:"type"`
	Files  []string `toml:"files"`
}

// topLevelWorldData is the top-level structure containing all keys in a
// complete TQW 'DATA' type file.
type topLevelWorldData struct {
	Format string     `toml:"format"`
	Type   string     `toml:"type"`
	World  worldDef   `toml:"world"`
	Player *playerDef `toml:"player"`
	Rooms  []roomDef  `toml:"room"`
}

type worldDef struct {
	Start   string `toml:"start"`
	Welcome string `toml:"welcome"`
	Goal    string `toml:"goal"`
	Ending  string `toml:"ending"`
}

type playerDef struct {
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	CarryLimit  int       `toml:"carry_limit"`
	Items       []itemDef `toml:"item"`
}

type roomDef struct {
	Name        string            `toml:"name"`
	Description string            `toml:"description"`
	Locked      bool              `toml:"locked"`
	Key         string            `toml:"key"`
	Exits       map[string]string `toml:"exits"`
	ExitOrder   []string          `toml:"exit_order"`
	Items       []itemDef         `toml:"item"`
}

// itemDef is any entity that can be placed in a room. Only the container
// kinds may have Items of their own.
type itemDef struct {
	Name        string    `toml:"name"`
	Kind        string    `toml:"kind"`
	Description string    `toml:"description"`
	Weight      int       `toml:"weight"`
	Takeable    *bool     `toml:"takeable"`
	Open        bool      `toml:"open"`
	Locked      bool      `toml:"locked"`
	Key         string    `toml:"key"`
	Items       []itemDef `toml:"item"`
}

// Kinds of item that can be given in an item's 'kind' key.
const (
	KindItem      = "item"
	KindContainer = "container"
	KindOpenable  = "openable"
	KindChest     = "chest"
)

func (it itemDef) kind() string {
	if it.Kind == "" {
		return KindItem
	}
	return it.Kind
}

func (it itemDef) takeable() bool {
	if it.Takeable == nil {
		return true
	}
	return *it.Takeable
}
