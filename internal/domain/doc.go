// Package domain contains the core business entities, value objects, and
// domain logic of the application: todos and the summary produced from the
// pending ones. It is independent of any specific infrastructure or delivery
// mechanism.
package domain
