package wire

import (
	"sort"
	"strings"
)

// Known trailer tags, named per spec.md §3.
const (
	TagPAC = "PAC"
	TagCHK = "CHK"
	TagSYS = "SYS"
	TagTNG = "TNG"
	TagPDE = "PDE"
	TagPDM = "PDM"
	TagDLM = "DLM"
	TagMRF = "MRF"
)

// trailerTagOrder fixes the order known tags are re-emitted in, matching
// spec.md §3's listing.
var trailerTagOrder = []string{TagPAC, TagCHK, TagSYS, TagTNG, TagPDE, TagPDM, TagDLM, TagMRF}

// Trailer is block 5's tag dictionary, structured the same way as
// UserHeader.
type Trailer struct {
	PAC *string
	CHK *string
	SYS *string
	TNG *string
	PDE *string
	PDM *string
	DLM *string
	MRF *string

	Unknown map[string]string
}

// DefaultTrailer is substituted whenever block 5 is absent.
func DefaultTrailer() Trailer {
	return Trailer{Unknown: map[string]string{}}
}

// DecodeTrailer parses the content of block 5.
func DecodeTrailer(content string) (Trailer, error) {
	fields := parseTagFields(content)
	t := Trailer{
		PAC:     take(fields, TagPAC),
		CHK:     take(fields, TagCHK),
		SYS:     take(fields, TagSYS),
		TNG:     take(fields, TagTNG),
		PDE:     take(fields, TagPDE),
		PDM:     take(fields, TagPDM),
		DLM:     take(fields, TagDLM),
		MRF:     take(fields, TagMRF),
		Unknown: fields,
	}
	return t, nil
}

func (t Trailer) known() map[string]*string {
	return map[string]*string{
		TagPAC: t.PAC,
		TagCHK: t.CHK,
		TagSYS: t.SYS,
		TagTNG: t.TNG,
		TagPDE: t.PDE,
		TagPDM: t.PDM,
		TagDLM: t.DLM,
		TagMRF: t.MRF,
	}
}

// EncodeTrailer emits "{5:", each known tag present in canonical order,
// then unknown tags sorted by key for determinism, then "}".
func EncodeTrailer(t Trailer) string {
	var b strings.Builder
	b.WriteString("{5:")

	known := t.known()
	for _, tag := range trailerTagOrder {
		if v := known[tag]; v != nil {
			b.WriteString("{" + tag + ":" + *v + "}")
		}
	}

	unknownKeys := make([]string, 0, len(t.Unknown))
	for k := range t.Unknown {
		unknownKeys = append(unknownKeys, k)
	}
	sort.Strings(unknownKeys)
	for _, k := range unknownKeys {
		b.WriteString("{" + k + ":" + t.Unknown[k] + "}")
	}

	b.WriteString("}")
	return b.String()
}
