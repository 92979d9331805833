// Package docs holds the user documentation of datavest as embedded
// markdown topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the markdown of a topic. "*" stands for every topic but
// the readme.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates topics, in order, one blank line apart.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(strings.TrimRight(content, "\n"))
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// GetAllTopics lists the topic names, sorted, without the readme.
func GetAllTopics() ([]string, error) {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if e.IsDir() || name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics, nil
}
