package render

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type fontKey struct {
	size float64
	bold bool
}

// FontCache loads TrueType/OpenType fonts from the system font directories
// and caches rendered faces. When no usable font file is found it falls back
// to the built-in bitmap face, so rendering works on bare containers too.
type FontCache struct {
	mu      sync.RWMutex
	dirs    []string
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[fontKey]font.Face
	scanned bool
}

func NewFontCache(extraDirs ...string) *FontCache {
	return &FontCache{
		dirs:  append(systemFontDirs(), extraDirs...),
		faces: make(map[fontKey]font.Face),
	}
}

// Face returns a cached face for the size/weight, or the bitmap fallback.
func (fc *FontCache) Face(size float64, bold bool) font.Face {
	fc.ensureScanned()

	key := fontKey{size: size, bold: bold}
	fc.mu.RLock()
	if face, ok := fc.faces[key]; ok {
		fc.mu.RUnlock()
		return face
	}
	fc.mu.RUnlock()

	f := fc.regular
	if bold && fc.bold != nil {
		f = fc.bold
	}

	var face font.Face = basicfont.Face7x13
	if f != nil {
		if ot, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}); err == nil {
			face = ot
		}
	}

	fc.mu.Lock()
	fc.faces[key] = face
	fc.mu.Unlock()
	return face
}

func (fc *FontCache) ensureScanned() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true

	regularNames := []string{"dejavusans.ttf", "liberationsans-regular.ttf", "arial.ttf", "helvetica.ttf"}
	boldNames := []string{"dejavusans-bold.ttf", "liberationsans-bold.ttf", "arialbd.ttf", "arial-bold.ttf"}

	for _, dir := range fc.dirs {
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info == nil || info.IsDir() {
				return nil
			}
			name := strings.ToLower(filepath.Base(path))
			if fc.regular == nil && matchesAny(name, regularNames) {
				fc.regular = parseFontFile(path)
			}
			if fc.bold == nil && matchesAny(name, boldNames) {
				fc.bold = parseFontFile(path)
			}
			return nil
		})
		if fc.regular != nil && fc.bold != nil {
			break
		}
	}
}

func matchesAny(name string, candidates []string) bool {
	for _, c := range candidates {
		if name == c {
			return true
		}
	}
	return false
}

func parseFontFile(path string) *opentype.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil
	}
	return f
}

func systemFontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{`C:\Windows\Fonts`}
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts"}
	default:
		return []string{"/usr/share/fonts", "/usr/local/share/fonts"}
	}
}
