package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"

	"imageorganizer/internal/batch"
	"imageorganizer/internal/classify"
	"imageorganizer/internal/config"
	"imageorganizer/internal/grouping"
	"imageorganizer/internal/logging"
	"imageorganizer/internal/services"
	"imageorganizer/internal/textutil"
)

const lockFileName = ".imageorganizer.lock"

// fallbackFolderName is used when a cluster display name sanitizes to nothing.
const fallbackFolderName = "Unnamed"

// Writer exports cluster partitions to disk.
type Writer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Summary reports what an export produced.
type Summary struct {
	Root    string
	Folders int
	Files   int
	ZipPath string
}

// NewWriter constructs an archive writer.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Writer{
		cfg:    cfg,
		logger: logger.With(logging.String(logging.FieldComponent, "archive")),
	}
}

// entry is one planned output file, either copied from a source path or
// generated content.
type entry struct {
	relPath    string
	sourcePath string
	content    []byte
}

// Export writes every cluster into the configured output directory, holding
// an exclusive lock on it for the duration. When ZIP export is enabled the
// same layout is also written as a single archive file.
func (w *Writer) Export(ctx context.Context, result *grouping.Result) (*Summary, error) {
	outputDir := strings.TrimSpace(w.cfg.Paths.OutputDir)
	if outputDir == "" {
		return nil, services.Wrap(services.ErrConfiguration, "export", "resolve output dir",
			"output directory not configured; set paths.output_dir in config.toml", nil)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "export", "ensure output dir", outputDir, err)
	}

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "export", "acquire lock", outputDir, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrTransient, "export", "acquire lock",
			"another export holds the output directory", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	entries, folders := w.plan(result)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.writeEntry(outputDir, e); err != nil {
			return nil, err
		}
	}

	summary := &Summary{Root: outputDir, Folders: folders, Files: len(entries)}
	if w.cfg.Export.ZipEnabled {
		zipPath := filepath.Join(outputDir, w.cfg.Export.ZipName)
		if err := writeZip(zipPath, entries); err != nil {
			return nil, services.Wrap(services.ErrTransient, "export", "write zip", zipPath, err)
		}
		summary.ZipPath = zipPath
	}

	w.logger.Info("export completed",
		logging.String("output_dir", outputDir),
		logging.Int("folders", summary.Folders),
		logging.Int("files", summary.Files))
	return summary, nil
}

// plan lays out the export: per-cluster folders, members in role order with
// role-suffixed names, a text summary per identified cluster, and numeric
// suffixes on any colliding target names.
func (w *Writer) plan(result *grouping.Result) ([]entry, int) {
	used := make(map[string]struct{})
	var entries []entry
	folders := 0

	for _, cluster := range result.Clusters() {
		if len(cluster.Members) == 0 {
			continue
		}
		folder := textutil.SanitizeFolderName(cluster.Name)
		if folder == "" {
			folder = fallbackFolderName
		}
		folders++
		prefix := strings.ReplaceAll(folder, " ", "_")

		members := make([]*batch.Image, len(cluster.Members))
		copy(members, cluster.Members)
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Role.ExportOrder() < members[j].Role.ExportOrder()
		})

		for _, member := range members {
			name := exportName(prefix, member)
			rel := uniqueRelPath(used, filepath.Join(folder, name))
			entries = append(entries, entry{relPath: rel, sourcePath: member.SourcePath})
		}

		if cluster.Summary != "" {
			rel := uniqueRelPath(used, filepath.Join(folder, prefix+"_info.txt"))
			entries = append(entries, entry{relPath: rel, content: []byte(cluster.Summary)})
		}
	}
	return entries, folders
}

// exportName builds the role-suffixed target filename for one member. Unknown
// roles keep their original name.
func exportName(prefix string, member *batch.Image) string {
	ext := filepath.Ext(member.Filename)
	switch member.Role {
	case classify.RoleFront:
		return prefix + "_DL_Front" + ext
	case classify.RoleBack:
		return prefix + "_DL_Back" + ext
	case classify.RoleSelfie:
		return prefix + "_Selfie" + ext
	default:
		return member.Filename
	}
}

// uniqueRelPath reserves relPath, bumping a numeric suffix until the name is
// free within this export.
func uniqueRelPath(used map[string]struct{}, relPath string) string {
	candidate := relPath
	ext := filepath.Ext(relPath)
	stem := strings.TrimSuffix(relPath, ext)
	for n := 2; ; n++ {
		if _, taken := used[candidate]; !taken {
			used[candidate] = struct{}{}
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
	}
}

func (w *Writer) writeEntry(outputDir string, e entry) error {
	target := filepath.Join(outputDir, e.relPath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return services.Wrap(services.ErrTransient, "export", "create folder", filepath.Dir(target), err)
	}
	if !w.cfg.Export.OverwriteExisting {
		if _, err := os.Stat(target); err == nil {
			return services.Wrap(services.ErrValidation, "export", "write file",
				target+" already exists; enable export.overwrite_existing to replace it", nil)
		}
	}
	if e.content != nil {
		if err := os.WriteFile(target, e.content, 0o644); err != nil {
			return services.Wrap(services.ErrTransient, "export", "write file", target, err)
		}
		return nil
	}
	if err := copyFile(e.sourcePath, target); err != nil {
		return services.Wrap(services.ErrTransient, "export", "copy image", e.sourcePath, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
