package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nguyentranbao-ct/catalog-console/internal/catalog"
	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/internal/export"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/repo/catalogapi"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
)

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

type exportOptions struct {
	search string
	sort   string
	desc   bool
	page   int
	size   int
	out    string
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch the catalog and write one page as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Configure(conf.Log.Level, conf.Log.Encoding); err != nil {
				return err
			}
			client, err := catalogapi.NewClient(conf)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runExport(ctx, client, conf, opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.search, "search", "", "only products whose title contains this term")
	flags.StringVar(&opts.sort, "sort", "", "sort column: id, title or price")
	flags.BoolVar(&opts.desc, "desc", false, "sort in descending order")
	flags.IntVar(&opts.page, "page", 1, "page to export, starting at 1")
	flags.IntVar(&opts.size, "size", 0, "items per page (defaults to CONSOLE_ITEMS_PER_PAGE)")
	flags.StringVarP(&opts.out, "out", "o", "", "output file (defaults to stdout)")
	return cmd
}

func runExport(ctx context.Context, client catalogapi.Client, conf *config.Config, opts *exportOptions, stdout io.Writer) error {
	state, err := opts.sortState()
	if err != nil {
		return err
	}
	size := opts.size
	if size == 0 {
		size = conf.Console.ItemsPerPage
	}
	if size < 0 {
		return fmt.Errorf("%w: %d", models.ErrInvalidPageSize, size)
	}

	products, err := client.List(ctx)
	if err != nil {
		return err
	}
	view := catalog.Sort(catalog.Filter(products, opts.search), state)
	if total := catalog.TotalPages(len(view), size); opts.page < 1 || opts.page > max(1, total) {
		return fmt.Errorf("page %d is out of range, there are %d pages", opts.page, total)
	}
	page := catalog.Paginate(view, opts.page, size)

	if err := writePage(opts.out, stdout, page); err != nil {
		return err
	}

	logger.MustNamed("export").Infow("exported page", "page", opts.page, "rows", len(page), "matched", len(view))
	return nil
}

// writePage writes the CSV to path, or to stdout when path is empty.
func writePage(path string, stdout io.Writer, page []models.Product) (err error) {
	if path == "" {
		return export.WriteCSV(stdout, page)
	}

	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return export.WriteCSV(f, page)
}

func (o *exportOptions) sortState() (catalog.SortState, error) {
	if o.sort == "" {
		return catalog.SortState{}, nil
	}
	column, err := catalog.ParseSortColumn(o.sort)
	if err != nil {
		return catalog.SortState{}, err
	}
	state := catalog.SortState{Column: column, Direction: catalog.Asc}
	if o.desc {
		state.Direction = catalog.Desc
	}
	return state, nil
}
