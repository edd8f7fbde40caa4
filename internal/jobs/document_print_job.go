package jobs

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"mfgorder/internal/core/application/usecases/commands"
	"mfgorder/internal/core/application/usecases/queries"
	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DocumentPrintJob produces order documents on a schedule. Every tick it lists
// headers awaiting document production, hands each to the print spooler and,
// once spooled, marks the header printed through the regular update command
// under the job's service session.
type DocumentPrintJob struct {
	listHandler   queries.ListUnprintedOrdersQueryHandler
	updateHandler commands.UpdateDocumentsPrintedCommandHandler
	spooler       ports.DocumentSpooler

	session   kernel.Session
	facility  string
	batchSize int
	schedule  string

	cron   *cron.Cron
	logger *slog.Logger
}

// NewDocumentPrintJob creates the print job. The session carries the service
// company and user every update is stamped with; facility and batch size scope
// each tick's listing.
func NewDocumentPrintJob(
	listHandler queries.ListUnprintedOrdersQueryHandler,
	updateHandler commands.UpdateDocumentsPrintedCommandHandler,
	spooler ports.DocumentSpooler,
	session kernel.Session,
	facility string,
	batchSize int,
	schedule string,
	logger *slog.Logger,
) *DocumentPrintJob {
	return &DocumentPrintJob{
		listHandler:   listHandler,
		updateHandler: updateHandler,
		spooler:       spooler,
		session:       session,
		facility:      facility,
		batchSize:     batchSize,
		schedule:      schedule,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "document_print_job"),
	}
}

// Start begins the document print job on its configured schedule.
func (j *DocumentPrintJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Document print job started",
		"schedule", j.schedule, "facility", j.facility)
	return nil
}

// Stop stops the document print job.
func (j *DocumentPrintJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Document print job stopped")
}

func (j *DocumentPrintJob) run(ctx context.Context) {
	query, err := queries.NewListUnprintedOrdersQuery(j.session.Company(), j.facility, j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Document print job misconfigured", "error", err)
		return
	}

	headers, err := j.listHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list unprinted order headers", "error", err)
		return
	}

	for _, header := range headers {
		j.printHeader(ctx, header)
	}
}

// printHeader spools one header's documents and marks it printed. A spool
// failure leaves the flag cleared so the next tick retries the header.
func (j *DocumentPrintJob) printHeader(ctx context.Context, header queries.ListUnprintedOrdersQueryResponse) {
	job := ports.PrintJob{
		Company:     header.Company,
		Facility:    header.Facility,
		ProductCode: header.ProductCode,
		OrderNumber: header.OrderNumber,
		Quantity:    header.OrderedQuantity,
		RequestedBy: j.session.User(),
	}

	if err := j.spooler.SpoolOrderDocuments(ctx, job); err != nil {
		j.logger.ErrorContext(ctx, "Failed to spool order documents",
			"orderNumber", header.OrderNumber, "error", err)
		return
	}

	cmd, err := commands.NewUpdateDocumentsPrintedCommand(
		strconv.Itoa(header.Company),
		header.Facility,
		header.ProductCode,
		header.OrderNumber,
		"1",
		j.session,
	)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build update command",
			"orderNumber", header.OrderNumber, "error", err)
		return
	}

	if err = j.updateHandler.Handle(ctx, cmd); err != nil {
		// A concurrently-updated row is an expected business scenario;
		// the header simply shows up again on the next tick.
		if !errors.Is(err, commands.ErrUpdateFailed) {
			j.logger.ErrorContext(ctx, "Failed to mark order header printed",
				"orderNumber", header.OrderNumber, "error", err)
		}
	}
}
