package wire

import (
	"sort"
	"strings"
)

// Known user header tags, named per spec.md §3.
const (
	TagServiceIdentifier              = "103"
	TagMIR                            = "106"
	TagMessageUserReference           = "108"
	TagServiceTypeIdentifier          = "111"
	TagBankingPriority                = "113"
	TagPaymentReleaseFINCopy          = "115"
	TagValidationFlag                 = "119"
	TagUETR                           = "121"
	TagPaymentReleaseFINInform        = "165"
	TagBalanceCheckpointDateTime      = "423"
	TagRelatedReference               = "424"
	TagScreeningInformationReceiver   = "433"
	TagPaymentControlsForReceiver     = "434"
)

// userHeaderTagOrder fixes the order known tags are re-emitted in,
// matching spec.md §3's listing.
var userHeaderTagOrder = []string{
	TagServiceIdentifier,
	TagMIR,
	TagMessageUserReference,
	TagServiceTypeIdentifier,
	TagBankingPriority,
	TagPaymentReleaseFINCopy,
	TagValidationFlag,
	TagUETR,
	TagPaymentReleaseFINInform,
	TagBalanceCheckpointDateTime,
	TagRelatedReference,
	TagScreeningInformationReceiver,
	TagPaymentControlsForReceiver,
}

// UserHeader is block 3's tag dictionary. Known tags are modelled as
// optional strings; anything else seen in the block lands in Unknown so
// round-trip is lossless apart from tag order.
type UserHeader struct {
	ServiceIdentifier            *string
	MIR                          *string
	MessageUserReference         *string
	ServiceTypeIdentifier        *string
	BankingPriority              *string
	PaymentReleaseFINCopy        *string
	ValidationFlag               *string
	UETR                         *string
	PaymentReleaseFINInform      *string
	BalanceCheckpointDateTime    *string
	RelatedReference             *string
	ScreeningInformationReceiver *string
	PaymentControlsForReceiver   *string

	Unknown map[string]string
}

// DefaultUserHeader is substituted whenever block 3 is absent.
func DefaultUserHeader() UserHeader {
	return UserHeader{Unknown: map[string]string{}}
}

// DecodeUserHeader parses the content of block 3.
func DecodeUserHeader(content string) (UserHeader, error) {
	fields := parseTagFields(content)
	h := UserHeader{
		ServiceIdentifier:            take(fields, TagServiceIdentifier),
		MIR:                          take(fields, TagMIR),
		MessageUserReference:         take(fields, TagMessageUserReference),
		ServiceTypeIdentifier:        take(fields, TagServiceTypeIdentifier),
		BankingPriority:              take(fields, TagBankingPriority),
		PaymentReleaseFINCopy:        take(fields, TagPaymentReleaseFINCopy),
		ValidationFlag:               take(fields, TagValidationFlag),
		UETR:                         take(fields, TagUETR),
		PaymentReleaseFINInform:      take(fields, TagPaymentReleaseFINInform),
		BalanceCheckpointDateTime:    take(fields, TagBalanceCheckpointDateTime),
		RelatedReference:             take(fields, TagRelatedReference),
		ScreeningInformationReceiver: take(fields, TagScreeningInformationReceiver),
		PaymentControlsForReceiver:   take(fields, TagPaymentControlsForReceiver),
		Unknown:                      fields,
	}
	return h, nil
}

func (h UserHeader) known() map[string]*string {
	return map[string]*string{
		TagServiceIdentifier:            h.ServiceIdentifier,
		TagMIR:                          h.MIR,
		TagMessageUserReference:         h.MessageUserReference,
		TagServiceTypeIdentifier:        h.ServiceTypeIdentifier,
		TagBankingPriority:              h.BankingPriority,
		TagPaymentReleaseFINCopy:        h.PaymentReleaseFINCopy,
		TagValidationFlag:               h.ValidationFlag,
		TagUETR:                         h.UETR,
		TagPaymentReleaseFINInform:      h.PaymentReleaseFINInform,
		TagBalanceCheckpointDateTime:    h.BalanceCheckpointDateTime,
		TagRelatedReference:             h.RelatedReference,
		TagScreeningInformationReceiver: h.ScreeningInformationReceiver,
		TagPaymentControlsForReceiver:   h.PaymentControlsForReceiver,
	}
}

// EncodeUserHeader emits "{3:", each known tag present in canonical order,
// then unknown tags sorted by key for determinism, then "}".
func EncodeUserHeader(h UserHeader) string {
	var b strings.Builder
	b.WriteString("{3:")

	known := h.known()
	for _, tag := range userHeaderTagOrder {
		if v := known[tag]; v != nil {
			b.WriteString("{" + tag + ":" + *v + "}")
		}
	}

	unknownKeys := make([]string, 0, len(h.Unknown))
	for k := range h.Unknown {
		unknownKeys = append(unknownKeys, k)
	}
	sort.Strings(unknownKeys)
	for _, k := range unknownKeys {
		b.WriteString("{" + k + ":" + h.Unknown[k] + "}")
	}

	b.WriteString("}")
	return b.String()
}
