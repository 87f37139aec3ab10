package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"birchwood/internal/domain"
	"birchwood/internal/gallery"
)

func galleryCmd() *cobra.Command {
	var (
		category string
		openID   string
		thumbs   string
		width    int
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the photo gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := domain.ParseGalleryFilter(category)
			if err != nil {
				return err
			}

			g := appCtx.Gallery
			mountAndRefresh(cmd.Context(), g.Mount, g.Refresh)
			if err := g.SetCategory(cat); err != nil {
				return err
			}
			if openID != "" && !g.OpenImage(openID) {
				fmt.Fprintf(cmd.ErrOrStderr(), "image %q not found\n", openID)
			}
			view := g.View()
			out := cmd.OutOrStdout()

			heading(out, "Gallery")
			fmt.Fprint(out, "Filter:")
			for _, opt := range gallery.Categories() {
				mark := " "
				if opt.Key == view.Catalog.SelectedCategory {
					mark = "*"
				}
				fmt.Fprintf(out, " [%s%s]", mark, opt.Label)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out)

			if view.Empty != gallery.EmptyNone {
				fmt.Fprintln(out, "No images yet")
			}
			for _, img := range view.Visible {
				fmt.Fprintf(out, "  %-12s %-12s %s\n", img.ID, img.Category, img.Title)
			}

			if img, ok := g.Catalog().OpenImage(); ok {
				section(out, img.Title)
				paragraph(out, img.Description)
				src, err := g.Catalog().Source(img.ID)
				switch {
				case err != nil:
					fmt.Fprintf(out, "  (image unavailable: %v)\n", err)
				case src.Remote():
					field(out, "URL", src.URL)
				default:
					field(out, "Type", src.MIME)
					fmt.Fprintf(out, "  Size: %d bytes\n", len(src.Data))
				}
			}

			if thumbs != "" {
				return writeThumbnails(cmd, g.Catalog(), view.Visible, thumbs, width)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter: all|camping|fishing|facilities")
	cmd.Flags().StringVar(&openID, "open", "", "open the viewer on this image id")
	cmd.Flags().StringVar(&thumbs, "thumbs", "", "write PNG thumbnails of the visible images to this directory")
	cmd.Flags().IntVar(&width, "width", 320, "thumbnail width in pixels")
	return cmd
}

// writeThumbnails renders each inline image; remote or undecodable images
// are reported and skipped.
func writeThumbnails(cmd *cobra.Command, c *gallery.Catalog, images domain.Images, dir string, width int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, img := range images {
		thumb, err := c.Thumbnail(img.ID, width)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skip %s: %v\n", img.ID, err)
			continue
		}
		path := filepath.Join(dir, filepath.Base(img.ID)+".png")
		if err := imaging.Save(thumb, path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}
