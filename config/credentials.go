package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"markestedt/gpwhelper/credential"
)

// Everything from '#' to end of line is a comment, including inside JSON strings
var commentPattern = regexp.MustCompile(`#.*$`)

type credentialFile struct {
	CredentialList *[]credentialEntry `json:"credential_list"`
}

// credentialEntry tells a missing key apart from an empty value
type credentialEntry struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// DuplicateUsernameError lists usernames that occur more than once
type DuplicateUsernameError struct {
	Usernames []string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("duplicate username(s): [%s]", strings.Join(e.Usernames, ", "))
}

// StripComments removes '#' comments line by line, turning relaxed JSON into JSON
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = commentPattern.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

// LoadCredentials reads and validates the credential file at path
func LoadCredentials(path string) ([]credential.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	records, err := ParseCredentials(data)
	if err != nil {
		return nil, fmt.Errorf("invalid credential file %s: %w", path, err)
	}
	return records, nil
}

// ParseCredentials decodes relaxed JSON with a credential_list array and
// rejects duplicate usernames
func ParseCredentials(data []byte) ([]credential.Record, error) {
	var f credentialFile
	if err := json.Unmarshal([]byte(StripComments(string(data))), &f); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if f.CredentialList == nil {
		return nil, fmt.Errorf("missing credential_list")
	}

	records := make([]credential.Record, 0, len(*f.CredentialList))
	for i, e := range *f.CredentialList {
		switch {
		case e.Username == nil:
			return nil, fmt.Errorf("credential_list[%d]: missing username", i)
		case e.Password == nil:
			return nil, fmt.Errorf("credential_list[%d]: missing password", i)
		}
		records = append(records, credential.Record{Username: *e.Username, Password: *e.Password})
	}

	if err := checkDuplicates(records); err != nil {
		return nil, err
	}
	return records, nil
}

func checkDuplicates(records []credential.Record) error {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.Username]++
	}

	var dupes []string
	for username, n := range counts {
		if n > 1 {
			dupes = append(dupes, username)
		}
	}
	if len(dupes) == 0 {
		return nil
	}

	sort.Strings(dupes)
	return &DuplicateUsernameError{Usernames: dupes}
}
