package fastparser

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-esv/internal/parser"
)

// Benchmark data sets
var (
	// Small: 3 rows x 3 columns of simple unquoted data
	smallESV = []byte("a🔥b🔥c\nd🔥e🔥f\ng🔥h🔥i")

	// Medium: 100 rows x 10 columns of unquoted data
	mediumESV = generateESV(100, 10, false)

	// Large: 1000 rows x 10 columns of unquoted data
	largeESV = generateESV(1000, 10, false)

	// Quoted: 100 rows x 10 columns with quoted fields
	quotedESV = generateESV(100, 10, true)
)

func generateESV(rows, cols int, quoted bool) []byte {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteString("🔥")
			}
			if quoted {
				sb.WriteString(`"fi""eld🔥"`)
			} else {
				sb.WriteString("field")
			}
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func benchmarkValidate(b *testing.B, data []byte) {
	opts := parser.DefaultOptions()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Validate(data, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkParse(b *testing.B, data []byte) {
	input := string(data)
	opts := parser.DefaultOptions()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.NewParserWithOptions(input, opts).Parse(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate_Small(b *testing.B)  { benchmarkValidate(b, smallESV) }
func BenchmarkValidate_Medium(b *testing.B) { benchmarkValidate(b, mediumESV) }
func BenchmarkValidate_Large(b *testing.B)  { benchmarkValidate(b, largeESV) }
func BenchmarkValidate_Quoted(b *testing.B) { benchmarkValidate(b, quotedESV) }

func BenchmarkParse_Small(b *testing.B)  { benchmarkParse(b, smallESV) }
func BenchmarkParse_Medium(b *testing.B) { benchmarkParse(b, mediumESV) }
func BenchmarkParse_Large(b *testing.B)  { benchmarkParse(b, largeESV) }
func BenchmarkParse_Quoted(b *testing.B) { benchmarkParse(b, quotedESV) }
