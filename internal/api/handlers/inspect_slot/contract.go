package inspect_slot

import (
	"context"

	inspectSlot "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/inspect_slot"
)

type InspectSlotUseCase interface {
	Execute(ctx context.Context, req *inspectSlot.Request) (*inspectSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
