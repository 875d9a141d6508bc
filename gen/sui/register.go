package sui

import "github.com/reoring/movebind"

// Register adds every framework binding to l.
func Register(l *movebind.Loader) {
	l.Register(
		ID, UID, URL, SUIDef,
		BalanceDef, SupplyDef,
		CoinDef, TreasuryCapDef, CoinMetadataDef, CurrencyCreatedDef,
		PriorityQueueDef, EntryDef,
		TableDef, TableVecDef,
		FieldDef, WrapperDef,
		BCSDef, VerifiedIDDef,
	)
}
