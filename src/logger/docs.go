// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides per-component loggers.
//
// Each subsystem owns a named [Logger] that filters messages by [Severity],
// prefixes them with a tag such as "[net WARNING] ", optionally writes them
// to the console, and hands every accepted message to its local observers
// and then to the global observers registered on the shared [Hub].
//
// Loggers are always created through a Hub:
//
//	hub := logger.NewHub()
//	log := hub.New("net", logger.WithMaxSeverity(logger.Info))
//
//	hub.Subscribe(logger.ObserverFunc(func(e logger.Event) error {
//		// every accepted message of every logger on this hub
//		return nil
//	}))
//
//	log.Info("listening")         // [net INFO] listening
//	log.InfoPretty("a\nb")        // [net INFO] a
//	                              //            b
//	err := log.ErrorEscalate("boom") // *EscalatedError after logging
//
// Everything runs synchronously on the calling goroutine. Registries are
// guarded by mutexes, and observers are invoked outside of those locks, so an
// observer may subscribe or unsubscribe while being notified; the change takes
// effect from the next message.
//
// The default maximum severity is [Warn], or [Debug] when the module is built
// with the "debug" build tag.
package logger
