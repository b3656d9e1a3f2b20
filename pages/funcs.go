package pages

import (
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"
)

const maxStars = 5

var funcMap = template.FuncMap{
	"stars":      stars,
	"date":       formatDate,
	"params":     params,
	"rating":     formatRating,
	"card":       card,
	"float":      func(i int) float64 { return float64(i) },
	"paragraphs": paragraphs,
}

// paragraphs, yazı içeriğini boş satırlardan paragraflara böler.
func paragraphs(content string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// cardCtx, kart partial'larına sayfa modeliyle birlikte tek bir öğe taşır.
type cardCtx struct {
	P    *pageData
	Item any
}

func card(p *pageData, item any) cardCtx {
	return cardCtx{P: p, Item: item}
}

// stars, 5 elemanlı dolu/boş yıldız listesi. Dolu yıldız sayısı puanın tam kısmıdır.
func stars(rating float64) []bool {
	full := int(math.Floor(rating))
	out := make([]bool, maxStars)
	for i := range out {
		out[i] = i < full
	}
	return out
}

// formatDate, tarihleri gün.ay.yıl olarak yazar.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

func formatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// params, TWithParams için anahtar/değer çiftlerinden map kurar:
//
//	{{.L.TWithParams "restaurants.resultRange" (params "start" 1 "end" 9 "total" 23)}}
func params(kv ...any) (map[string]string, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("params: odd number of arguments")
	}
	out := make(map[string]string, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("params: key %v is not a string", kv[i])
		}
		out[key] = fmt.Sprint(kv[i+1])
	}
	return out, nil
}
