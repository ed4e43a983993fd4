// Package sdist builds source tarballs from committed git trees.
package sdist

import (
	"archive/tar"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Archive identifies a built source tarball on disk.
type Archive struct {
	Name   string
	Path   string
	SHA256 string
	Size   int64
}

// Build archives the repository tree at revision as
// <project>-<version>.tar.gz under destDir. Entries are placed beneath a
// <project>-<version>/ prefix, the convention source consumers expect.
func Build(repo *git.Repository, revision, project, version, destDir string) (Archive, error) {
	prefix := fmt.Sprintf("%s-%s", project, version)
	name := prefix + ".tar.gz"

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Archive{}, fmt.Errorf("failed to create artifact directory %q: %w", destDir, err)
	}
	artifactPath := filepath.Join(destDir, name)
	f, err := os.Create(artifactPath)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to create source tarball %q: %w", artifactPath, err)
	}

	sum := sha256.New()
	err = WriteTree(repo, revision, prefix, io.MultiWriter(f, sum))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Archive{}, err
	}

	info, err := os.Stat(artifactPath)
	if err != nil {
		return Archive{}, err
	}
	return Archive{
		Name:   name,
		Path:   artifactPath,
		SHA256: hex.EncodeToString(sum.Sum(nil)),
		Size:   info.Size(),
	}, nil
}

// WriteTree writes a gzipped tarball of the committed tree at revision to w.
// Every entry goes under prefix. The worktree is not consulted, so
// uncommitted changes never leak into the archive.
func WriteTree(repo *git.Repository, revision, prefix string, w io.Writer) error {
	commit, err := commitAtRevision(repo, revision)
	if err != nil {
		return err
	}
	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("failed to read tree for revision %q: %w", revision, err)
	}

	gw := gzip.NewWriter(w)
	tw := tar.NewWriter(gw)

	modTime := commit.Committer.When
	err = tw.WriteHeader(&tar.Header{
		Name:     prefix + "/",
		Typeflag: tar.TypeDir,
		Mode:     0o755,
		ModTime:  modTime,
	})
	if err != nil {
		return err
	}

	err = tree.Files().ForEach(func(f *object.File) error {
		return writeFileEntry(tw, prefix, modTime, f)
	})
	if err != nil {
		return fmt.Errorf("failed to archive tree at revision %q: %w", revision, err)
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return gw.Close()
}

func writeFileEntry(tw *tar.Writer, prefix string, modTime time.Time, f *object.File) error {
	mode, err := f.Mode.ToOSFileMode()
	if err != nil {
		return err
	}

	if f.Mode == filemode.Symlink {
		target, err := f.Contents()
		if err != nil {
			return err
		}
		return tw.WriteHeader(&tar.Header{
			Name:     path.Join(prefix, f.Name),
			Typeflag: tar.TypeSymlink,
			Linkname: target,
			Mode:     int64(mode.Perm()),
			ModTime:  modTime,
		})
	}

	err = tw.WriteHeader(&tar.Header{
		Name:    path.Join(prefix, f.Name),
		Size:    f.Size,
		Mode:    int64(mode.Perm()),
		ModTime: modTime,
	})
	if err != nil {
		return err
	}
	r, err := f.Reader()
	if err != nil {
		return err
	}
	defer closeAndIgnoreError(r)
	_, err = io.Copy(tw, r)
	return err
}

func commitAtRevision(repo *git.Repository, revision string) (*object.Commit, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}
	obj, err := repo.Object(plumbing.AnyObject, *hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read object for revision %q: %w", revision, err)
	}
	switch o := obj.(type) {
	case *object.Commit:
		return o, nil
	case *object.Tag:
		commit, err := o.Commit()
		if err != nil {
			return nil, fmt.Errorf("failed to peel tag %q to a commit: %w", revision, err)
		}
		return commit, nil
	default:
		return nil, fmt.Errorf("revision %q is a %s, not a commit", revision, obj.Type())
	}
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
