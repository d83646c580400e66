package buffer

import "os"

// InsertFile reads path's full content and splices it in immediately after
// the cursor without moving it: the bytes land in the gap's
// right-hand edge, at [c-size, c). Fails if path doesn't stat as a regular
// file. Clears the mark; sets Modified.
func (b *Buffer) InsertFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() < 0 {
		return errOp("insert_file", KindIOFailed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errOp("insert_file", KindIOFailed)
	}
	size := len(data)
	if err := b.growFor(size); err != nil {
		return err
	}
	copy(b.data[b.c-size:b.c], data)
	b.c -= size
	b.markSet = false
	b.Modified = true
	return nil
}

// WriteBuffer writes the buffer's content to path. If
// makeBackup and path already exists as a regular file, it is rename-
// replaced to path+"~" first (atomic on POSIX), and the new file's mode
// bits are restored to match it after writing. Clears Modified if path
// equals the buffer's own Filename.
func (b *Buffer) WriteBuffer(path string, makeBackup bool) error {
	var mode os.FileMode
	haveMode := false
	if makeBackup {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			mode = info.Mode()
			haveMode = true
			if err := os.Rename(path, path+"~"); err != nil {
				return errOp("write_buffer", KindIOFailed)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errOp("write_buffer", KindIOFailed)
	}
	_, werr1 := f.Write(b.data[:b.g])
	_, werr2 := f.Write(b.data[b.c : len(b.data)-1])
	cerr := f.Close()
	if werr1 != nil || werr2 != nil || cerr != nil {
		return errOp("write_buffer", KindIOFailed)
	}

	if haveMode {
		if err := os.Chmod(path, mode); err != nil {
			return errOp("write_buffer", KindIOFailed)
		}
	}

	if b.HasFilename && path == b.Filename {
		b.Modified = false
	}
	return nil
}

// WriteRegion writes exactly the marked region's bytes to path, with no
// backup. Fails with NoRegion if no mark is set.
func (b *Buffer) WriteRegion(path string) error {
	lo, hi, err := b.region()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b.regionBytes(lo, hi), 0644); err != nil {
		return errOp("write_region", KindIOFailed)
	}
	return nil
}

// ReplaceRegionFromFile replaces the marked region with path's content.
// Transactional in that the file is read fully into memory before the
// region is deleted, so a read failure leaves the buffer untouched. The
// newly spliced span becomes the region.
func (b *Buffer) ReplaceRegionFromFile(path string) error {
	lo, hi, err := b.region()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errOp("replace_region_from_file", KindIOFailed)
	}
	if err := b.moveToLogical(lo); err != nil {
		return err
	}
	if hi > lo {
		if err := b.DeleteChar(hi - lo); err != nil {
			return err
		}
	}
	if err := b.InsertBytes(data); err != nil {
		return err
	}
	b.markIndex = lo
	b.markSet = true
	return nil
}
