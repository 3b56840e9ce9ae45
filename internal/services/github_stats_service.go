package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/ruanfv/portfolio/pkg/logger"
	"golang.org/x/oauth2"
)

// GitHubStatsService refreshes the decorative stars/forks counters of
// projects that link a GitHub repository.
type GitHubStatsService struct {
	client      *github.Client
	projectRepo *repositories.ProjectRepository
}

// NewGitHubStatsService builds the service. An empty token yields an
// unauthenticated client, which works with lower rate limits.
func NewGitHubStatsService(token string, projectRepo *repositories.ProjectRepository) *GitHubStatsService {
	var client *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	} else {
		client = github.NewClient(nil)
	}

	return &GitHubStatsService{
		client:      client,
		projectRepo: projectRepo,
	}
}

// RefreshAll walks every project with a GitHub URL and updates its
// counters. Per-project failures are logged and skipped.
func (s *GitHubStatsService) RefreshAll(ctx context.Context) error {
	projects, err := s.projectRepo.ListWithGitHub()
	if err != nil {
		return err
	}

	for _, project := range projects {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		owner, repo, err := ParseGitHubURL(*project.GitHub)
		if err != nil {
			logger.WithField("project_id", project.ID).WithError(err).Warnf("Skipping stats refresh")
			continue
		}

		repository, _, err := s.client.Repositories.Get(ctx, owner, repo)
		if err != nil {
			logger.WithField("project_id", project.ID).WithError(err).Warnf("Failed to fetch repository")
			continue
		}

		stars := repository.GetStargazersCount()
		forks := repository.GetForksCount()
		if stars == project.Stars && forks == project.Forks {
			continue
		}

		if err := s.projectRepo.UpdateStats(project.ID, stars, forks); err != nil {
			logger.WithField("project_id", project.ID).WithError(err).Error("Failed to update project stats")
		}
	}

	return nil
}

// ParseGitHubURL extracts owner and repository from a GitHub URL such as
// https://github.com/owner/repo or git@github.com:owner/repo.git.
func ParseGitHubURL(raw string) (string, string, error) {
	raw = strings.TrimSuffix(raw, ".git")

	if strings.HasPrefix(raw, "git@github.com:") {
		raw = "https://github.com/" + strings.TrimPrefix(raw, "git@github.com:")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	if !strings.HasSuffix(parsed.Host, "github.com") {
		return "", "", fmt.Errorf("not a github URL: %s", raw)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot determine owner/repo from %s", raw)
	}

	return parts[0], parts[1], nil
}
