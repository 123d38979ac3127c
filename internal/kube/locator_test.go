// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package kube

import (
	"context"
	"errors"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
)

func pod(ns, name string) *corev1.Pod {
	return &corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: ns}}
}

func newLocator(objs ...runtime.Object) *Locator {
	return NewLocator(fake.NewSimpleClientset(objs...))
}

func TestFindPod(t *testing.T) {
	l := newLocator(
		pod("prod-a", "resmgr-7c9d-abcde"),
		pod("prod-a", "mysqld-exporter-5f6b-zzzzz"),
		pod("prod-a", "mysqld-exporter-5f6b-aaaaa"),
		pod("prod-b", "mysqld-exporter-1111-bbbbb"),
	)

	got, err := l.FindPod(context.Background(), "prod-a", "mysqld-exporter")
	if err != nil {
		t.Fatalf("FindPod() error = %v", err)
	}
	if got != "mysqld-exporter-5f6b-aaaaa" {
		t.Errorf("FindPod() = %q, want mysqld-exporter-5f6b-aaaaa", got)
	}
}

func TestFindPodNone(t *testing.T) {
	l := newLocator(pod("prod-a", "resmgr-7c9d-abcde"), pod("other", "mysqld-exporter-x"))

	_, err := l.FindPod(context.Background(), "prod-a", "mysqld-exporter")
	if !errors.Is(err, ErrNoPod) {
		t.Errorf("FindPod() error = %v, want ErrNoPod", err)
	}
}
