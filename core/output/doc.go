// Package output writes exported documents to one or more targets.
//
// A Sink accepts named documents ("Items.json", "Icons/Item Icon - Glue.png") and stores
// them. Names always use forward slashes; each sink maps them onto its own namespace.
//
// # Targets
//
//   - file: a directory on an afero filesystem (the OS filesystem in production).
//   - bucket: an S3/MinIO bucket, objects keyed by prefix + name.
//   - database: the exported_files table, one row per name, upserted on every run.
//
// Several targets are combined with Multi, which writes to each in order and reports
// every failure.
//
// # Usage
//
//	sink, err := output.New(ctx, cfg.Output, output.Backends{Fs: afero.NewOsFs()})
//	err = sink.WriteJSON(ctx, "Items.json", items)
package output
