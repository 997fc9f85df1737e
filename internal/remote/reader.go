package remote

import (
	"fmt"
	"net"
	pathpkg "path"
	"strconv"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/sadopc/gtree/internal/model"
)

const defaultPort = 22

// Config configures the SSH connection underneath a remote walk.
type Config struct {
	Target  Target
	Port    int
	Batch   bool
	Timeout time.Duration
}

// Client is an open SFTP session exposing the directory-reader contract
// the traversal engine walks against.
type Client struct {
	sftp *sftp.Client
	ssh  *ssh.Client
	root string
}

// Connect dials the target and resolves the remote root path.
func Connect(cfg Config) (*Client, error) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	hostKey, err := hostKeyCallback(cfg.Target.Host, cfg.Port, cfg.Batch)
	if err != nil {
		return nil, err
	}
	auth, err := buildAuthMethods(cfg.Target.User, cfg.Target.Host, cfg.Batch)
	if err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(cfg.Target.Host, strconv.Itoa(cfg.Port))
	sshClient, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            cfg.Target.User,
		Auth:            auth,
		HostKeyCallback: hostKey,
		Timeout:         cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %w", addr, err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("cannot open SFTP session on %s: %w", addr, err)
	}

	root := cfg.Target.Path
	if resolved, err := sftpClient.RealPath(root); err == nil {
		root = resolved
	}
	root = pathpkg.Clean(root)

	info, err := sftpClient.Stat(root)
	if err != nil {
		sftpClient.Close()
		sshClient.Close()
		return nil, fmt.Errorf("cannot stat remote path %q: %w", root, err)
	}
	if !info.IsDir() {
		sftpClient.Close()
		sshClient.Close()
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	return &Client{sftp: sftpClient, ssh: sshClient, root: root}, nil
}

// Root returns the resolved remote root path.
func (c *Client) Root() string { return c.root }

// ReadDir lists one remote directory as traversal entries.
func (c *Client) ReadDir(path string) ([]model.Entry, error) {
	infos, err := c.sftp.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]model.Entry, len(infos))
	for i, info := range infos {
		entries[i] = model.NewInfoEntry(path, info)
	}
	return entries, nil
}

// Close tears down the SFTP session and the SSH connection.
func (c *Client) Close() error {
	sftpErr := c.sftp.Close()
	sshErr := c.ssh.Close()
	if sftpErr != nil {
		return sftpErr
	}
	return sshErr
}
