// Package seed provides the initial members and transactions written to an
// empty store.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/carson-networks/members-ledger/internal/storage/member"
	"github.com/carson-networks/members-ledger/internal/storage/transaction"
)

const dateLayout = "2006-01-02"

//go:embed initial_data.yaml
var initialData []byte

// InitialData is the default content of each collection.
type InitialData struct {
	Members      []member.Member
	Transactions []transaction.Transaction
}

type fileData struct {
	Members []struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"members"`
	Transactions []struct {
		ID          int    `yaml:"id"`
		MemberID    int    `yaml:"memberId"`
		Description string `yaml:"description"`
		Amount      string `yaml:"amount"`
		Date        string `yaml:"date"`
	} `yaml:"transactions"`
}

// Default returns the embedded initial data.
func Default() *InitialData {
	data, err := Parse(initialData)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded initial data is invalid: %v", err))
	}
	return data
}

// Load reads initial data from path, or returns Default when path is empty.
func Load(path string) (*InitialData, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return data, nil
}

// Parse decodes and validates YAML initial data.
func Parse(raw []byte) (*InitialData, error) {
	var file fileData
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	data := &InitialData{
		Members:      make([]member.Member, 0, len(file.Members)),
		Transactions: make([]transaction.Transaction, 0, len(file.Transactions)),
	}

	memberIDs := make(map[int]struct{}, len(file.Members))
	for _, m := range file.Members {
		name := strings.TrimSpace(m.Name)
		if m.ID <= 0 {
			return nil, fmt.Errorf("member %q: id must be positive", name)
		}
		if name == "" {
			return nil, fmt.Errorf("member %d: name is required", m.ID)
		}
		if _, dup := memberIDs[m.ID]; dup {
			return nil, fmt.Errorf("member %d: duplicate id", m.ID)
		}
		memberIDs[m.ID] = struct{}{}
		data.Members = append(data.Members, member.Member{ID: m.ID, Name: name})
	}

	transactionIDs := make(map[int]struct{}, len(file.Transactions))
	for _, t := range file.Transactions {
		if t.ID <= 0 {
			return nil, errors.New("transaction id must be positive")
		}
		if _, dup := transactionIDs[t.ID]; dup {
			return nil, fmt.Errorf("transaction %d: duplicate id", t.ID)
		}
		transactionIDs[t.ID] = struct{}{}
		if _, ok := memberIDs[t.MemberID]; !ok {
			return nil, fmt.Errorf("transaction %d: unknown member %d", t.ID, t.MemberID)
		}
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: invalid amount: %w", t.ID, err)
		}
		date, err := time.Parse(dateLayout, t.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: invalid date: %w", t.ID, err)
		}
		data.Transactions = append(data.Transactions, transaction.Transaction{
			ID:          t.ID,
			MemberID:    t.MemberID,
			Description: strings.TrimSpace(t.Description),
			Amount:      amount,
			Date:        date,
		})
	}

	return data, nil
}
