// Package gitctx stamps report provenance from the scanned project's git
// repository, when there is one.
package gitctx

import (
	git "github.com/go-git/go-git/v5"
)

// Provenance captures where a scan ran. All fields are best-effort.
type Provenance struct {
	Branch string `json:"branch,omitempty"`
	Commit string `json:"commit,omitempty"`
	Dirty  bool   `json:"dirty,omitempty"`
}

// Collect returns the provenance of the repository containing target, or nil
// when target is not inside a git repository. Collect never fails the scan.
func Collect(target string) *Provenance {
	repo, err := git.PlainOpenWithOptions(target, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}
	head, err := repo.Head()
	if err != nil {
		return nil
	}

	prov := &Provenance{
		Branch: head.Name().Short(),
		Commit: head.Hash().String(),
	}

	if wt, err := repo.Worktree(); err == nil {
		if st, err := wt.Status(); err == nil {
			prov.Dirty = !st.IsClean()
		}
	}
	return prov
}
