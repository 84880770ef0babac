// internal/writer/report_writer.go
package writer

import (
	"errors"

	cfg "github.com/tamzrod/signage-configgen/internal/config"
	"github.com/tamzrod/signage-configgen/internal/report"
)

// ReportWriter is the delivery-only contract for run reports.
// It encodes a snapshot and writes it verbatim.
type ReportWriter interface {
	WriteReport(s report.Snapshot) error
}

type reportWriter struct {
	format string
	out    Writer
}

// NewReportWriter builds a report writer if reporting is enabled.
// If rc.Enabled is false, reporting is disabled.
func NewReportWriter(rc cfg.ReportConfig, outputDir string, sink Sink) (ReportWriter, bool, error) {
	if !rc.Enabled {
		return nil, false, nil
	}

	plan, err := BuildFilePlan("report", outputDir, rc.File)
	if err != nil {
		return nil, false, err
	}

	return &reportWriter{
		format: rc.Format,
		out:    New(plan, sink),
	}, true, nil
}

func (rw *reportWriter) WriteReport(s report.Snapshot) error {
	if rw == nil || rw.out == nil {
		return errors.New("report writer: disabled")
	}
	b, err := report.Encode(s, rw.format)
	if err != nil {
		return err
	}
	return rw.out.Write(b)
}
