// Package patterns collects small, runnable design patterns for Go.
//
// Packages:
//
//   - lazy: Provider[T], a lazily constructed shared instance with double-checked
//     publication, shared failure reporting and retry after a failed attempt.
//   - singleton: a process-wide Greeter built on lazy.Provider.
//   - factory: simple factory and factory-method variants selecting shapes by tag.
//   - furniture: an abstract factory producing matching product families.
//   - structural/...: adapter, composite, decorator, facade and proxy (the proxy
//     loads its subject through lazy.Provider).
//   - behavioral/...: chain of responsibility, command, mediator, observer, state
//     and template method.
//   - cmd/patterns: the CLI that runs each demo.
//
// Selection by tag never yields a nil product: unknown tags are typed errors
// (factory.UnknownKindError, furniture.UnknownStyleError).
package patterns
