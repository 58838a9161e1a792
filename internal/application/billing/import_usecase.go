package billing

import (
	"fmt"
	"io"

	"github.com/swiftcourier/billing-api/internal/application/dto"
	"github.com/swiftcourier/billing-api/internal/domain"
)

// ImportUseCase turns uploaded item workbooks into item drafts for the
// invoice form, and hands out the blank template.
type ImportUseCase struct {
	codec ItemSheetCodec
}

// NewImportUseCase builds the use case.
func NewImportUseCase(codec ItemSheetCodec) *ImportUseCase {
	return &ImportUseCase{codec: codec}
}

// ParseItems reads the uploaded workbook. Row-level problems (bad dates,
// non-numeric amounts) degrade per row inside the codec; only a file that
// is not a workbook at all is an input error.
func (uc *ImportUseCase) ParseItems(r io.Reader) (*dto.ImportItemsResponse, error) {
	items, err := uc.codec.ParseItems(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &dto.ImportItemsResponse{Items: items}, nil
}

// Template returns the empty import workbook and its download filename.
func (uc *ImportUseCase) Template() ([]byte, string, error) {
	b, err := uc.codec.Template()
	if err != nil {
		return nil, "", fmt.Errorf("build template workbook: %w", err)
	}
	return b, "invoice_items_template.xlsx", nil
}
