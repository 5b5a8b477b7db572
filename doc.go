// Package doc2pdf converts images, EPUB books and Markdown files to PDF,
// one file per source or one combined file per batch.
//
// # Quick Start
//
// Build a batch, commit it into jobs with a configuration snapshot, and
// drain the jobs through a Queue:
//
//	var batch doc2pdf.Batch
//	batch.Add("cover.jpg", "novel.epub")
//
//	jobs, err := batch.Jobs(doc2pdf.DefaultRenderConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var q *doc2pdf.Queue
//	finished := 0
//	q = doc2pdf.NewQueue(doc2pdf.NewConverter(),
//	    doc2pdf.WithNotifier(func(e doc2pdf.Event) {
//	        if e.Type == doc2pdf.EventJobStarted {
//	            return
//	        }
//	        fmt.Println(e.Job.Name(), e.Type)
//	        if finished++; finished == len(jobs) {
//	            q.Stop()
//	        }
//	    }),
//	)
//	if err := q.Enqueue(jobs...); err != nil {
//	    log.Fatal(err)
//	}
//	if err := q.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until Stop is called, so the notifier stops the queue once
// every submitted job has reported.
//
// # Rendering
//
// Images are decoded with their EXIF orientation applied, scaled to the
// largest size that fits the page with the aspect ratio kept, and
// centered: one image per page.
//
// Documents are reduced to a flat sequence of paragraphs and headings.
// Headings use bold 14pt Helvetica, paragraphs 11pt Helvetica with greedy
// word wrap. A new page starts whenever the next line would cross the
// bottom margin. Combined documents get a title page each.
//
// Text is drawn with the core PDF fonts, which cover Windows-1252.
// Characters outside it are replaced by '?'.
//
// # Queue
//
// A Queue is an unbounded FIFO drained by one worker goroutine calling
// Run. Jobs run one at a time, in submission order, and a failing or
// panicking job never stops the worker. Events reach the notifier in the
// order jobs were popped: started, then succeeded or failed.
//
// # Extraction
//
// Extractor is a second Processor that writes an EPUB's metadata and
// chapter text to JSON.
package doc2pdf
