// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem under ~/.showroom.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable generation prompts
//   - PromptWatcher: reloads prompts when their files change
package file
