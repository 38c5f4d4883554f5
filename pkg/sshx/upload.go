package sshx

import (
	"errors"
	"io"
	"path"

	"github.com/pkg/sftp"
)

// Upload copies the content of the reader to the given path on the
// remote host, creating parent directories as needed.
func (client *Client) Upload(dst string, src io.Reader) error {
	if client.state != stateConnected {
		return errors.New("no active SSH connection, connect first")
	}

	sftpClient, err := sftp.NewClient(client.client)
	if err != nil {
		return err
	}
	defer sftpClient.Close()

	if err := sftpClient.MkdirAll(path.Dir(dst)); err != nil {
		return err
	}

	file, err := sftpClient.Create(dst)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, src); err != nil {
		return err
	}

	client.Logger.Debug().Str("path", dst).Msg("Uploaded file")

	return nil
}
