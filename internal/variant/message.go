package variant

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/pkg/whatsapp"
)

// SelectedOption is one chosen (option type, value) pair. Order matters:
// the inquiry message renders options in option-type position order.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OrderedSelection projects a selection map onto the product's option types,
// preserving their declared order and skipping types without a chosen value.
func OrderedSelection(optionTypes []models.OptionType, selection map[string]string) []SelectedOption {
	out := make([]SelectedOption, 0, len(optionTypes))
	for _, ot := range optionTypes {
		if v, ok := selection[ot.Name]; ok && v != "" {
			out = append(out, SelectedOption{Name: ot.Name, Value: v})
		}
	}
	return out
}

// OrderMessage is the composed inquiry text and its wa.me deep link.
type OrderMessage struct {
	Text string `json:"text"`
	URI  string `json:"uri"`
}

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount in Indonesian currency presentation with
// thousands grouping, e.g. 55000 -> "Rp 55.000".
func FormatRupiah(amount int) string {
	return rupiahPrinter.Sprintf("Rp %d", amount)
}

// BuildOrderMessage composes the WhatsApp inquiry for a resolved variant at
// a chosen branch. The variant line is omitted when the selection is empty
// (products without option types). The phone must already be normalized to
// international digits; this function only interpolates it.
func BuildOrderMessage(productName string, selection []SelectedOption, price int, branchName, phone string) OrderMessage {
	parts := make([]string, 0, len(selection))
	for _, s := range selection {
		parts = append(parts, fmt.Sprintf("%s: %s", s.Name, s.Value))
	}

	var b strings.Builder
	b.WriteString("Halo, saya tertarik dengan produk:\n\n")
	fmt.Fprintf(&b, "📦 *%s*\n", productName)
	if len(parts) > 0 {
		fmt.Fprintf(&b, "🎯 Varian: %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, "💰 Harga: %s\n", FormatRupiah(price))
	fmt.Fprintf(&b, "🏪 Cabang: %s\n\n", branchName)
	b.WriteString("Apakah produk ini tersedia?")

	text := b.String()
	return OrderMessage{Text: text, URI: whatsapp.Link(phone, text)}
}
