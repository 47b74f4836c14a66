// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CatalogSource: Reads the vehicle catalog (embedded YAML or a file)
//   - CatalogStore: Holds the loaded catalog in memory
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Generator: Generative AI gateway. Without it, generation returns
//     domain.ErrGeneratorUnavailable while browsing keeps working.
//   - PromptStore: Prompt templates. Without it, built-in prompts are used.
//   - AIConfigValidator: Connectivity checks for AI settings.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
