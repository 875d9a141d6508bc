package sui

import (
	"reflect"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen/std"
)

const (
	CoinTypeName            = "0x2::coin::Coin"
	TreasuryCapTypeName     = "0x2::coin::TreasuryCap"
	CoinMetadataTypeName    = "0x2::coin::CoinMetadata"
	CurrencyCreatedTypeName = "0x2::coin::CurrencyCreated"
)

var phantomT = []movebind.TypeParam{{Name: "T", Phantom: true}}

// Coin is 0x2::coin::Coin<phantom T>.
type Coin struct {
	movebind.Header
	id      movebind.Address
	balance *Balance
}

var CoinDef = &movebind.StructDef{
	Name:       CoinTypeName,
	TypeParams: phantomT,
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(UID)},
		{Name: "balance", Type: movebind.StructOf(BalanceDef, movebind.Param(0))},
	},
	GoType: reflect.TypeOf((*Coin)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Coin{Header: h, id: v[0].(movebind.Address), balance: v[1].(*Balance)}
	},
	Values: func(i movebind.Instance) []any {
		c := i.(*Coin)
		return []any{c.id, c.balance}
	},
}

func NewCoin(t movebind.TypeArg, id movebind.Address, balance *Balance) (*Coin, error) {
	return movebind.Build[*Coin](CoinDef, []movebind.TypeArg{movebind.Phantom(t)}, id, balance)
}

func IsCoin(typeString string) bool { return CoinDef.Is(typeString) }

func (c *Coin) ID() movebind.Address { return c.id }
func (c *Coin) Balance() *Balance    { return c.balance }

func (c *Coin) ToJSONField() (map[string]any, error) { return CoinDef.ToJSONField(c) }
func (c *Coin) ToJSON() (map[string]any, error)      { return CoinDef.ToJSON(c) }

// TreasuryCap is 0x2::coin::TreasuryCap<phantom T>.
type TreasuryCap struct {
	movebind.Header
	id          movebind.Address
	totalSupply *Supply
}

var TreasuryCapDef = &movebind.StructDef{
	Name:       TreasuryCapTypeName,
	TypeParams: phantomT,
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(UID)},
		{Name: "total_supply", JSONName: "totalSupply", Type: movebind.StructOf(SupplyDef, movebind.Param(0))},
	},
	GoType: reflect.TypeOf((*TreasuryCap)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &TreasuryCap{Header: h, id: v[0].(movebind.Address), totalSupply: v[1].(*Supply)}
	},
	Values: func(i movebind.Instance) []any {
		c := i.(*TreasuryCap)
		return []any{c.id, c.totalSupply}
	},
}

func IsTreasuryCap(typeString string) bool { return TreasuryCapDef.Is(typeString) }

func (c *TreasuryCap) ID() movebind.Address { return c.id }
func (c *TreasuryCap) TotalSupply() *Supply { return c.totalSupply }

func (c *TreasuryCap) ToJSONField() (map[string]any, error) { return TreasuryCapDef.ToJSONField(c) }
func (c *TreasuryCap) ToJSON() (map[string]any, error)      { return TreasuryCapDef.ToJSON(c) }

// CoinMetadata is 0x2::coin::CoinMetadata<phantom T>.
type CoinMetadata struct {
	movebind.Header
	id          movebind.Address
	decimals    uint8
	name        string
	symbol      string
	description string
	iconURL     *string
}

var CoinMetadataDef = &movebind.StructDef{
	Name:       CoinMetadataTypeName,
	TypeParams: phantomT,
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(UID)},
		{Name: "decimals", Type: movebind.Fixed(movebind.U8)},
		{Name: "name", Type: movebind.StructOf(std.String)},
		{Name: "symbol", Type: movebind.StructOf(std.ASCIIString)},
		{Name: "description", Type: movebind.StructOf(std.String)},
		{Name: "icon_url", JSONName: "iconUrl", Type: movebind.StructOf(std.Option, movebind.StructOf(URL))},
	},
	GoType: reflect.TypeOf((*CoinMetadata)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &CoinMetadata{
			Header:      h,
			id:          v[0].(movebind.Address),
			decimals:    v[1].(uint8),
			name:        v[2].(string),
			symbol:      v[3].(string),
			description: v[4].(string),
			iconURL:     v[5].(*string),
		}
	},
	Values: func(i movebind.Instance) []any {
		m := i.(*CoinMetadata)
		return []any{m.id, m.decimals, m.name, m.symbol, m.description, m.iconURL}
	},
}

func IsCoinMetadata(typeString string) bool { return CoinMetadataDef.Is(typeString) }

func (m *CoinMetadata) ID() movebind.Address { return m.id }
func (m *CoinMetadata) Decimals() uint8      { return m.decimals }
func (m *CoinMetadata) Name() string         { return m.name }
func (m *CoinMetadata) Symbol() string       { return m.symbol }
func (m *CoinMetadata) Description() string  { return m.description }

// IconURL returns the icon URL and whether one is set.
func (m *CoinMetadata) IconURL() (string, bool) {
	if m.iconURL == nil {
		return "", false
	}
	return *m.iconURL, true
}

func (m *CoinMetadata) ToJSONField() (map[string]any, error) { return CoinMetadataDef.ToJSONField(m) }
func (m *CoinMetadata) ToJSON() (map[string]any, error)      { return CoinMetadataDef.ToJSON(m) }

// CurrencyCreated is the event 0x2::coin::CurrencyCreated<phantom T>.
type CurrencyCreated struct {
	movebind.Header
	decimals uint8
}

var CurrencyCreatedDef = &movebind.StructDef{
	Name:       CurrencyCreatedTypeName,
	TypeParams: phantomT,
	Fields: []movebind.FieldDef{
		{Name: "decimals", Type: movebind.Fixed(movebind.U8)},
	},
	GoType: reflect.TypeOf((*CurrencyCreated)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &CurrencyCreated{Header: h, decimals: v[0].(uint8)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*CurrencyCreated).decimals} },
}

func IsCurrencyCreated(typeString string) bool { return CurrencyCreatedDef.Is(typeString) }

func (e *CurrencyCreated) Decimals() uint8 { return e.decimals }

func (e *CurrencyCreated) ToJSONField() (map[string]any, error) {
	return CurrencyCreatedDef.ToJSONField(e)
}
func (e *CurrencyCreated) ToJSON() (map[string]any, error) { return CurrencyCreatedDef.ToJSON(e) }
