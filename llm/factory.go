// Provider factory keyed by provider name.

package llm

import (
	"fmt"
	"os"
	"strings"
)

// providerInfo holds construction details for one provider.
type providerInfo struct {
	apiKeyEnv    string
	modelEnv     string
	defaultModel string
	construct    func(apiKey, model string, maxTokens uint32, temperature float32) Provider
}

// Supported providers.
var providers = map[string]providerInfo{
	"openai": {"OPENAI_API_KEY", "OPENAI_MODEL", "gpt-4o",
		func(k, m string, t uint32, tp float32) Provider { return NewOpenAIProvider(k, m, t, tp) }},
	"anthropic": {"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "claude-sonnet-4-20250514",
		func(k, m string, t uint32, tp float32) Provider { return NewAnthropicProvider(k, m, t, tp) }},
	"deepseek": {"DEEPSEEK_API_KEY", "DEEPSEEK_MODEL", "deepseek-chat",
		func(k, m string, t uint32, tp float32) Provider { return NewDeepSeekProvider(k, m, t, tp) }},
	"gemini": {"GEMINI_API_KEY", "GEMINI_MODEL", "gemini-2.5-flash",
		func(k, m string, t uint32, tp float32) Provider { return NewGeminiProvider(k, m, t, tp) }},
}

// Provider aliases map to canonical names.
var providerAliases = map[string]string{
	"claude": "anthropic",
	"google": "gemini",
	"gpt":    "openai",
}

// Normalize resolves aliases and validates a provider name.
func Normalize(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := providerAliases[name]; ok {
		name = canonical
	}
	if _, ok := providers[name]; !ok {
		return "", fmt.Errorf("unknown provider: %s", name)
	}
	return name, nil
}

// New creates a provider with an explicit API key and model.
// An empty model selects the provider's default.
func New(name, apiKey, model string, maxTokens uint32, temperature float32) (Provider, error) {
	name, err := Normalize(name)
	if err != nil {
		return nil, err
	}

	info := providers[name]
	if apiKey == "" {
		return nil, fmt.Errorf("%s requires an API key (%s)", name, info.apiKeyEnv)
	}
	if model == "" {
		model = info.defaultModel
	}
	return info.construct(apiKey, model, maxTokens, temperature), nil
}

// FromEnv creates a provider reading the API key and model override from
// the provider's environment variables.
func FromEnv(name string, maxTokens uint32, temperature float32) (Provider, error) {
	name, err := Normalize(name)
	if err != nil {
		return nil, err
	}

	info := providers[name]
	apiKey := os.Getenv(info.apiKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not set for provider %s", info.apiKeyEnv, name)
	}
	return New(name, apiKey, os.Getenv(info.modelEnv), maxTokens, temperature)
}
