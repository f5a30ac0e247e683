/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package i18n resolves message keys of operation form data into localized texts.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// Bundle holds the messages of all locales.
type Bundle struct {
	mu            sync.RWMutex
	defaultLocale string
	messages      map[string]map[string]string
}

// NewBundle creates an empty bundle.
func NewBundle(defaultLocale string) *Bundle {
	return &Bundle{defaultLocale: normalizeLocale(defaultLocale), messages: map[string]map[string]string{}}
}

// LoadBundle reads a YAML file mapping each locale to its messages.
func LoadBundle(path string, defaultLocale string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message bundle: %w", err)
	}
	bundle := NewBundle(defaultLocale)
	if err := bundle.Add(data); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Add merges the messages of the YAML document into the bundle.
func (b *Bundle) Add(data []byte) error {
	var messages map[string]map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("failed to parse message bundle: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for locale, entries := range messages {
		locale = normalizeLocale(locale)
		if b.messages[locale] == nil {
			b.messages[locale] = map[string]string{}
		}
		for key, value := range entries {
			b.messages[locale][key] = value
		}
	}
	return nil
}

// Translate returns the message of the key in the locale. Lookup falls back from a regional
// locale to its language and then to the default locale. Unknown keys return false.
func (b *Bundle) Translate(key, locale string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, candidate := range b.candidates(locale) {
		if value, ok := b.messages[candidate][key]; ok {
			return value, true
		}
	}
	return "", false
}

// TranslateFormData returns a copy of the form data with messages resolved for the locale.
// Messages without a translation keep their value.
func (b *Bundle) TranslateFormData(formData *model.OperationFormData, locale string) *model.OperationFormData {
	translated := formData.Clone()
	if translated == nil {
		return nil
	}

	b.translateMessage(&translated.Title, locale)
	b.translateMessage(&translated.Greeting, locale)
	b.translateMessage(&translated.Summary, locale)
	for i := range translated.Parameters {
		attribute := &translated.Parameters[i]
		b.translateMessage(&attribute.Label, locale)
		if attribute.Type == model.FormAttributeAmount && attribute.Value == "" && attribute.Amount != nil {
			attribute.Value = strings.TrimSpace(attribute.Amount.StringFixed(2) + " " + attribute.Currency)
		}
	}
	return translated
}

func (b *Bundle) translateMessage(message *model.Message, locale string) {
	if message.ID == "" {
		return
	}
	if value, ok := b.Translate(message.ID, locale); ok {
		message.Value = value
	}
}

func (b *Bundle) candidates(locale string) []string {
	locale = normalizeLocale(locale)
	var candidates []string
	if locale != "" {
		candidates = append(candidates, locale)
		if language, _, found := strings.Cut(locale, "-"); found {
			candidates = append(candidates, language)
		}
	}
	return append(candidates, b.defaultLocale)
}

// ParseAcceptLanguage returns the first language of an Accept-Language header value.
func ParseAcceptLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")
	return normalizeLocale(tag)
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}
