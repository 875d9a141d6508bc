package sui

import (
	"reflect"

	"github.com/reoring/movebind"
)

const (
	PriorityQueueTypeName = "0x2::priority_queue::PriorityQueue"
	EntryTypeName         = "0x2::priority_queue::Entry"
)

// PriorityQueue is 0x2::priority_queue::PriorityQueue<T>.
type PriorityQueue struct {
	movebind.Header
	entries []*Entry
}

var PriorityQueueDef = &movebind.StructDef{
	Name:       PriorityQueueTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T"}},
	Fields: []movebind.FieldDef{
		{Name: "entries", Type: movebind.Vec(movebind.StructOf(EntryDef, movebind.Param(0)))},
	},
	GoType: reflect.TypeOf((*PriorityQueue)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &PriorityQueue{Header: h, entries: v[0].([]*Entry)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*PriorityQueue).entries} },
}

func NewPriorityQueue(t movebind.TypeArg, entries []*Entry) (*PriorityQueue, error) {
	return movebind.Build[*PriorityQueue](PriorityQueueDef, []movebind.TypeArg{t}, entries)
}

func IsPriorityQueue(typeString string) bool { return PriorityQueueDef.Is(typeString) }

// Entries returns the queue's entries. The slice must not be modified.
func (q *PriorityQueue) Entries() []*Entry { return q.entries }

func (q *PriorityQueue) ToJSONField() (map[string]any, error) {
	return PriorityQueueDef.ToJSONField(q)
}
func (q *PriorityQueue) ToJSON() (map[string]any, error) { return PriorityQueueDef.ToJSON(q) }

// Entry is 0x2::priority_queue::Entry<T>.
type Entry struct {
	movebind.Header
	priority uint64
	value    any
}

var EntryDef = &movebind.StructDef{
	Name:       EntryTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T"}},
	Fields: []movebind.FieldDef{
		{Name: "priority", Type: movebind.Fixed(movebind.U64)},
		{Name: "value", Type: movebind.Param(0)},
	},
	GoType: reflect.TypeOf((*Entry)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Entry{Header: h, priority: v[0].(uint64), value: v[1]}
	},
	Values: func(i movebind.Instance) []any {
		e := i.(*Entry)
		return []any{e.priority, e.value}
	},
}

func NewEntry(t movebind.TypeArg, priority uint64, value any) (*Entry, error) {
	return movebind.Build[*Entry](EntryDef, []movebind.TypeArg{t}, priority, value)
}

func IsEntry(typeString string) bool { return EntryDef.Is(typeString) }

func (e *Entry) Priority() uint64 { return e.priority }

// Value has the Go type decoding produces for T.
func (e *Entry) Value() any { return e.value }

func (e *Entry) ToJSONField() (map[string]any, error) { return EntryDef.ToJSONField(e) }
func (e *Entry) ToJSON() (map[string]any, error)      { return EntryDef.ToJSON(e) }
