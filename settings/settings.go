// Package settings persists the two terminal-local configuration blobs
// (printer, store/receipt) as JSON files and rehydrates them at startup.
// Stored blobs are decoded over pre-filled defaults, so a blob written by an
// older build simply keeps the default for any key it lacks.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/cosmodumplings/cosmo-pos/utils"
)

type PrinterSettings struct {
	PrinterName string `json:"printerName"`
	IPAddress   string `json:"ipAddress"`
	PaperSize   string `json:"paperSize"`
	AutoCut     bool   `json:"autoCut"`
}

type StoreSettings struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Contact       string  `json:"contact"`
	Email         string  `json:"email"`
	FooterMessage string  `json:"footerMessage"`
	TaxRate       float64 `json:"taxRate"`
}

func DefaultPrinterSettings() PrinterSettings {
	return PrinterSettings{
		PrinterName: "Epson TM-T20III",
		IPAddress:   "192.168.1.200",
		PaperSize:   "80mm",
		AutoCut:     true,
	}
}

func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		Name:          "Cosmo Dumplings",
		Address:       "123 Flavor Street, Cape Town",
		Contact:       "021 555 0199",
		Email:         "hello@cosmodumplings.co.za",
		FooterMessage: "Thank you for dining with us!",
		TaxRate:       0.15,
	}
}

const (
	printerFile = "printer_settings.json"
	storeFile   = "store_settings.json"
)

type Manager struct {
	dir string

	mu      sync.RWMutex
	printer PrinterSettings
	store   StoreSettings
}

// NewManager loads both blobs from dir, falling back to defaults for missing
// files and missing keys.
func NewManager(dir string) *Manager {
	m := &Manager{
		dir:     dir,
		printer: DefaultPrinterSettings(),
		store:   DefaultStoreSettings(),
	}
	m.load(printerFile, &m.printer)
	m.load(storeFile, &m.store)
	return m
}

// load decodes into a target already holding defaults; absent keys keep them.
func (m *Manager) load(name string, target interface{}) {
	data, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, target); err != nil {
		utils.ErrorLogger.Printf("malformed settings blob %s, keeping defaults: %v", name, err)
	}
}

func (m *Manager) save(name string, value interface{}) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(m.dir, name), data, 0o644)
}

func (m *Manager) Printer() PrinterSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.printer
}

func (m *Manager) SetPrinter(p PrinterSettings) error {
	m.mu.Lock()
	m.printer = p
	m.mu.Unlock()
	return m.save(printerFile, p)
}

func (m *Manager) Store() StoreSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store
}

func (m *Manager) SetStore(s StoreSettings) error {
	m.mu.Lock()
	m.store = s
	m.mu.Unlock()
	return m.save(storeFile, s)
}
