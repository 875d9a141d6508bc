package movebind_test

import (
	"encoding/binary"
	"testing"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen"
	"github.com/reoring/movebind/internal/fixture"
)

const queueType = "0x2::priority_queue::PriorityQueue<0x2::coin::Coin<0x2::sui::SUI>>"

func benchLoader(tb testing.TB, opts ...movebind.LoaderOption) *movebind.Loader {
	tb.Helper()
	l := gen.NewLoader(opts...)
	fixture.Register(l)
	return l
}

// --- Resolution ---

func Benchmark_Resolve_Uncached(b *testing.B) {
	l := benchLoader(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Reified(queueType); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Resolve_Cached(b *testing.B) {
	l := benchLoader(b, movebind.WithCache(64))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Reified(queueType); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Decoding ---

func coinQueueBCS(n int) []byte {
	data := []byte{byte(n)}
	for i := 0; i < n; i++ {
		data = binary.LittleEndian.AppendUint64(data, uint64(i))
		id := movebind.Address{31: byte(i)}
		data = append(data, id[:]...)
		data = binary.LittleEndian.AppendUint64(data, 1000)
	}
	return data
}

func Benchmark_Decode_BCS_CoinQueue(b *testing.B) {
	r, err := benchLoader(b).ReifiedStruct(queueType)
	if err != nil {
		b.Fatal(err)
	}
	data := coinQueueBCS(100)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.FromBCS(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Decode_JSON_CoinQueue(b *testing.B) {
	r, err := benchLoader(b).ReifiedStruct(queueType)
	if err != nil {
		b.Fatal(err)
	}
	v, err := r.FromBCS(coinQueueBCS(100))
	if err != nil {
		b.Fatal(err)
	}
	data, err := movebind.MarshalInstance(v.(movebind.Instance))
	if err != nil {
		b.Fatal(err)
	}
	opt := movebind.DefaultJSONOptions()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.FromJSONBytes(data, opt); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Encode_BCS_Bar(b *testing.B) {
	r := fixture.BarDef.MustReified()
	bar := fixture.NewBar(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.ToBCS(bar); err != nil {
			b.Fatal(err)
		}
	}
}
