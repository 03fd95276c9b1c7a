package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amcdesk/onboard/internal/client/imports"
)

// Import parses an inventory workbook and merges the normalized
// entries into step 4. A workbook with nothing importable leaves the
// inventory untouched and tells the user why.
func (a *App) Import(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		printlnFn("Cannot open workbook:", err.Error())
		return err
	}
	defer f.Close()

	count, err := a.svc.ImportWorkbook(ctx, f)
	if err != nil {
		if errors.Is(err, imports.ErrNoImportableRows) {
			printlnFn("The workbook contains no device rows (sample rows are skipped). Nothing was imported.")
			return err
		}
		a.reportLifecycleError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Imported %d device(s).", count))
	return nil
}

// Template downloads the inventory template, narrowed to the device
// categories selected on step 3, and writes it to path.
func (a *App) Template(ctx context.Context, path string) error {
	cats := a.svc.TemplateCategories()
	if len(cats) > 0 {
		printlnFn("Requesting template for:", strings.Join(cats, ", "))
	} else {
		printlnFn("No categories selected on step 3; requesting the generic template.")
	}

	data, err := a.svc.DownloadTemplate(ctx)
	if err != nil {
		a.reportLifecycleError(err)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		printlnFn("Cannot write template:", err.Error())
		return err
	}
	printlnFn("Template written to", path)
	return nil
}
