// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package observers provides ready-made [logger.Observer] implementations:
// [Mirror] copies formatted lines to another writer, [Capture] records events
// for tests, [Tally] counts messages per logger and renders a summary table,
// and [Metrics] exports the same counts as Prometheus counters.
//
// All observers in this package are safe for concurrent use and may be
// registered either on a single logger or globally on a hub.
package observers
