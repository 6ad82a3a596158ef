// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects, the todo store
// (defined in internal/store) and the optional external capabilities
// (internal/generation and internal/notify) to fulfill application features.
//
// Key components:
//
// 1. TodoService:
//   - Lists, creates and deletes todos on behalf of the API layer
//
// 2. SummaryService:
//   - Snapshots pending todos and refuses to run when there are none
//   - Tries the text generation capability, falling back to the heuristic
//     summary when it is absent or fails
//   - Forwards the summary to the notification channel and reports the
//     delivery status without ever failing because of it
//
// 3. Error Handling:
//   - Expected conditions are returned as sentinel errors
//   - Unexpected errors are wrapped in ServiceError
//
// The service layer depends on domain entities and interfaces, never on
// specific infrastructure implementations.
package service
