// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package kube provides the small amount of read-only Kubernetes access the
// workflows need beyond kubectl exec.
package kube

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

// ErrNoPod is returned when no pod in the namespace matches.
var ErrNoPod = errors.New("no matching pod")

// NewClientset builds a clientset from the same kubeconfig kubectl would use:
// $KUBECONFIG if set, otherwise ~/.kube/config, with the current context.
func NewClientset() (kubernetes.Interface, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("loading kubeconfig: %w", err)
	}
	cs, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating clientset: %w", err)
	}
	return cs, nil
}

// Locator finds pods by name fragment.
type Locator struct {
	clientset kubernetes.Interface
}

// NewLocator creates a Locator backed by the given clientset.
func NewLocator(clientset kubernetes.Interface) *Locator {
	return &Locator{clientset: clientset}
}

// FindPod returns the name of the first pod, in name order, in namespace whose
// name contains fragment.
func (l *Locator) FindPod(ctx context.Context, namespace, fragment string) (string, error) {
	list, err := l.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("listing pods in %s: %w", namespace, err)
	}
	names := make([]string, 0, len(list.Items))
	for _, p := range list.Items {
		if strings.Contains(p.Name, fragment) {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: %q in namespace %s", ErrNoPod, fragment, namespace)
	}
	sort.Strings(names)
	return names[0], nil
}
