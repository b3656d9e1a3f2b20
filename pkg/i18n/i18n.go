// Package i18n, sayfa metinleri ve API mesajları için çoklu dil desteği.
//
// Varsayılan dil Türkçe'dir; İngilizce Accept-Language ile seçilir.
//
//	localizer := i18n.NewLocalizer("en")
//	msg := localizer.T("admin.unauthorized.title")
//	// → "Unauthorized Access"
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// SupportedLanguages, desteklenen dil kodları. İlki varsayılandır.
var SupportedLanguages = []string{"tr", "en"}

// DefaultLanguage, varsayılan dil.
const DefaultLanguage = "tr"

var (
	// translations: map[lang]map[key]value. Load'dan sonra sadece okunur.
	translations map[string]map[string]string
	loadOnce     sync.Once
	loadErr      error

	matcher = language.NewMatcher([]language.Tag{language.Turkish, language.English})
)

// Load, her dil için <lang>.json dosyasını okur. Sadece ilk çağrı yükleme yapar;
// sonraki çağrılar ilk çağrının sonucunu döner.
func Load(localesFS fs.FS) error {
	loadOnce.Do(func() {
		loaded := make(map[string]map[string]string, len(SupportedLanguages))
		for _, lang := range SupportedLanguages {
			fileName := lang + ".json"
			data, err := fs.ReadFile(localesFS, fileName)
			if err != nil {
				loadErr = fmt.Errorf("failed to read translation file %s: %w", fileName, err)
				return
			}

			var nested map[string]any
			if err := json.Unmarshal(data, &nested); err != nil {
				loadErr = fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
				return
			}

			flat := make(map[string]string)
			flattenMap("", nested, flat)
			loaded[lang] = flat
		}
		translations = loaded
	})
	return loadErr
}

// KeyCount, bir dil için yüklenmiş anahtar sayısı.
func KeyCount(lang string) int {
	return len(translations[lang])
}

// Localizer, belirli bir dil için çeviri yapar.
type Localizer struct {
	lang string
}

// NewLocalizer, desteklenmeyen dilde varsayılana düşer.
func NewLocalizer(lang string) *Localizer {
	if !isSupported(lang) {
		lang = DefaultLanguage
	}
	return &Localizer{lang: lang}
}

// Lang, localizer'ın dil kodu.
func (l *Localizer) Lang() string { return l.lang }

// T, anahtarın çevirisini döner. Bulunamazsa varsayılan dile,
// orada da yoksa anahtarın kendisine düşer.
func (l *Localizer) T(key string) string {
	if msg, ok := translations[l.lang][key]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// TWithParams, {{param}} yer tutucularını doldurur.
//
//	localizer.TWithParams("restaurants.resultRange", map[string]string{"start": "1", "end": "9", "total": "23"})
func (l *Localizer) TWithParams(key string, params map[string]string) string {
	msg := l.T(key)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", v)
	}
	return msg
}

// DetectLanguage, Accept-Language header'ından en uygun desteklenen dili seçer.
// Header yoksa veya parse edilemezse varsayılan dil döner.
func DetectLanguage(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages[idx]
}

func isSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// flattenMap: {"admin": {"title": "..."}} → {"admin.title": "..."}
func flattenMap(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flattenMap(key, val, dst)
		}
	}
}
