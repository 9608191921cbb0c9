// Package watcher drives watch mode. It observes the files a pipeline
// run reads and delivers debounced change notifications keyed by the
// input each file belongs to.
//
// # Debouncing
//
// Editors and exporters rarely write a file once. A save typically
// produces several filesystem events in quick succession, sometimes
// through a temporary file and a rename. Each watched file therefore
// carries a timer that restarts on every event; a change is reported
// only after the file has been quiet for half a second.
//
// # Watch Targets
//
// Watches are installed on parent directories rather than the files
// themselves, because replace-by-rename drops a watch installed
// directly on a file. Events are filtered back down to the registered
// target set, and each notification names both the file that changed
// and the pipeline input to reprocess, which differ for variant frames
// and shadow companions.
package watcher
